package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keepaway/simulate"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10000, cfg.ResolvedRounds())
	require.NoError(t, cfg.Validate())
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, ErrNotFound)

	cfg, err := LoadFile(writeFile(t, "policy: division\n"))
	require.NoError(t, err)
	assert.Equal(t, "division", cfg.Policy)
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeFile(t, `policy: division
rounds: 0
input: troop.txt
trace: true
logging:
  level: DEBUG
  console_format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	p, err := cfg.ResolvedPolicy()
	require.NoError(t, err)
	assert.Equal(t, simulate.PolicyDivision, p)
	assert.Equal(t, 0, cfg.ResolvedRounds())
	assert.Equal(t, "troop.txt", cfg.Input)
	assert.True(t, cfg.Trace)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.ConsoleFormat)
	// Unset logging keys keep their defaults.
	assert.Equal(t, 10, cfg.Logging.FileMaxSizeMB)
	assert.True(t, cfg.Logging.ConsoleEnabled)
}

func TestLoad_DefaultRoundsFollowPolicy(t *testing.T) {
	cfg, err := Load(writeFile(t, "policy: division\n"))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.ResolvedRounds())
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeFile(t, "policy: [unclosed\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Policy = "halve"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidPolicy)
	_, err := cfg.ResolvedPolicy()
	require.ErrorIs(t, err, ErrInvalidPolicy)

	cfg = Default()
	n := -3
	cfg.Rounds = &n
	require.ErrorIs(t, cfg.Validate(), ErrInvalidRounds)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	n := 7
	cfg.Rounds = &n

	data, err := cfg.Marshal()
	require.NoError(t, err)

	back, err := Load(writeFile(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
