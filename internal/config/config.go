// Package config loads the keepaway run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keepaway/internal/logger"
	"github.com/katalvlaran/keepaway/simulate"
)

var (
	// ErrInvalidPolicy indicates an unknown worry policy name.
	ErrInvalidPolicy = errors.New("config: invalid policy")

	// ErrInvalidRounds indicates a negative round count.
	ErrInvalidRounds = errors.New("config: rounds cannot be negative")

	// ErrNotFound indicates an explicitly requested file does not exist.
	ErrNotFound = errors.New("config: file not found")
)

// DefaultPath is read, when present, if no configuration file is named.
const DefaultPath = "keepaway.yaml"

// RunConfig holds the settings of one simulation run.
type RunConfig struct {
	// Policy is "division" or "modulus".
	Policy string `yaml:"policy"`

	// Rounds is the number of rounds to play. Nil means the policy default
	// (20 for division, 10000 for modulus).
	Rounds *int `yaml:"rounds"`

	// Input is the path of the troop description; "-" reads stdin.
	Input string `yaml:"input"`

	// Trace logs every actor's holdings after each round.
	Trace bool `yaml:"trace"`

	Logging logger.Config `yaml:"logging"`
}

// Default returns the modulus policy reading stdin, with default logging.
func Default() *RunConfig {
	return &RunConfig{
		Policy:  string(simulate.PolicyModulus),
		Rounds:  nil,
		Input:   "-",
		Trace:   false,
		Logging: logger.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults; a malformed one is an error.
func Load(path string) (*RunConfig, error) {
	config, err := LoadFile(path)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return config, err
}

// LoadFile is Load for a path the user named: a missing file is
// ErrNotFound rather than the defaults.
func LoadFile(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the policy name and round count.
func (c *RunConfig) Validate() error {
	if _, err := simulate.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, c.Policy)
	}
	if c.Rounds != nil && *c.Rounds < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRounds, *c.Rounds)
	}
	return nil
}

// ResolvedPolicy returns the validated policy.
func (c *RunConfig) ResolvedPolicy() (simulate.Policy, error) {
	p, err := simulate.ParsePolicy(c.Policy)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, c.Policy)
	}
	return p, nil
}

// ResolvedRounds returns Rounds, or the default for the configured policy.
func (c *RunConfig) ResolvedRounds() int {
	if c.Rounds != nil {
		return *c.Rounds
	}
	p, err := simulate.ParsePolicy(c.Policy)
	if err != nil {
		p = simulate.PolicyModulus
	}
	return p.DefaultRounds()
}

// Marshal renders the configuration as YAML.
func (c *RunConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
