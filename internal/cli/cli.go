// Package cli implements the keepaway command line: "run" plays a troop
// description, "generate" prints a random one.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/keepaway/builder"
	"github.com/katalvlaran/keepaway/internal/config"
	"github.com/katalvlaran/keepaway/internal/logger"
	"github.com/katalvlaran/keepaway/simulate"
)

const usage = `usage:
  keepaway run [-config file.yaml] [-policy division|modulus] [-rounds N] [-trace] [input|-]
  keepaway generate [-actors N] [-items K] [-seed S]
`

var errUsage = errors.New("usage")

// Run executes the command in args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "run":
		err = runCmd(args[1:], stdin, stdout, stderr)
	case "generate":
		err = generateCmd(args[1:], stdout, stderr)
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "keepaway: unknown command %q\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	default:
		fmt.Fprintf(stderr, "keepaway: %v\n", err)
		return 1
	}
}

func runCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML run configuration; without it ./"+config.DefaultPath+" is read when present")
	policy := fs.String("policy", "", "worry policy: division or modulus (overrides config)")
	rounds := fs.Int("rounds", -1, "rounds to play; negative means config or policy default")
	trace := fs.Bool("trace", false, "log every actor's holdings after each round")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}

	var (
		cfg *config.RunConfig
		err error
	)
	if *cfgPath != "" {
		cfg, err = config.LoadFile(*cfgPath)
	} else {
		cfg, err = config.Load(config.DefaultPath)
	}
	if err != nil {
		return err
	}
	if *policy != "" {
		cfg.Policy = *policy
	}
	if *rounds >= 0 {
		cfg.Rounds = rounds
	}
	if *trace {
		cfg.Trace = true
	}
	if fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
	}
	cfg.Logging.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer := logger.New(cfg.Logging, stderr)
	defer closer.Close()

	input, err := readInput(cfg.Input, stdin)
	if err != nil {
		return err
	}

	p, err := cfg.ResolvedPolicy()
	if err != nil {
		return err
	}
	n := cfg.ResolvedRounds()

	opts := []simulate.Option{simulate.WithLogger(log)}
	if cfg.Trace {
		opts = append(opts, simulate.WithOnRound(func(s simulate.Snapshot) {
			log.Info("round",
				slog.Int("round", s.Round),
				slog.Any("activity", s.Activity),
				slog.Any("holdings", s.Holdings))
		}))
	}

	log.Info("run", slog.String("policy", string(p)), slog.Int("rounds", n), slog.String("input", cfg.Input))
	answer, err := simulate.Solve(input, n, p, opts...)
	if err != nil {
		log.Error("run failed", slog.Any("error", err))
		return err
	}
	log.Info("monkey business", slog.Uint64("answer", answer))
	fmt.Fprintln(stdout, answer)

	return nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func generateCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	actors := fs.Int("actors", 8, "number of actors")
	items := fs.Int("items", 6, "maximum starting items per actor")
	seed := fs.Int64("seed", 1, "random seed")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *items < 0 {
		return fmt.Errorf("generate: -items cannot be negative (%d)", *items)
	}

	text, err := builder.RandomInput(*actors,
		builder.WithSeed(*seed),
		builder.WithItemsPerActor(0, *items))
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, text)

	return nil
}
