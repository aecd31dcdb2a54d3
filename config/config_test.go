package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazefall/model"
)

func TestDefaultMatchesGameDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, model.DefaultConfig(), cfg.GameConfig())
	assert.Equal(t, 60, cfg.TickRate)
}

func TestLoadOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazefall.yaml")
	body := "cols: 30\nrows: 15\nseed: 7\nlog_level: debug\nsound: false\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Cols)
	assert.Equal(t, 15, cfg.Rows)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Sound)
	assert.Equal(t, model.DefaultSpawnInterval, int(cfg.SpawnIntervalMs), "untouched keys keep defaults")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cols: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MAZEFALL_SEED", "1234")
	t.Setenv("MAZEFALL_COLS", "40")
	t.Setenv("MAZEFALL_ROWS", "nope")
	t.Setenv("MAZEFALL_LOG_LEVEL", "warn")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 40, cfg.Cols)
	assert.Equal(t, model.DefaultRows, cfg.Rows)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Cols = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidDimensions))

	cfg = Default()
	cfg.TickRate = 0
	assert.True(t, errors.Is(cfg.Validate(), model.ErrInvalidTiming))

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestFromArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazefall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cols: 30\nrows: 30\nseed: 5\n"), 0644))
	t.Setenv("MAZEFALL_ROWS", "35")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := FromArgs(fs, []string{"-config", path, "-cols", "12", "-sound=false"})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Cols, "flag beats file")
	assert.Equal(t, 35, cfg.Rows, "env beats file")
	assert.Equal(t, int64(5), cfg.Seed)
	assert.False(t, cfg.Sound)
}

func TestFromArgsResolvesSeedAndValidates(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := FromArgs(fs, nil)
	require.NoError(t, err)
	assert.NotZero(t, cfg.Seed)

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	_, err = FromArgs(fs, []string{"-cols", "0"})
	assert.True(t, errors.Is(err, model.ErrInvalidDimensions))
}
