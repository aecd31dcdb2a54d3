package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/zucenko/mazefall/model"
)

// Config is the tunable surface shared by both frontends. Zero values in a
// YAML file leave the defaults in place.
type Config struct {
	Cols            int     `yaml:"cols"`
	Rows            int     `yaml:"rows"`
	CellSize        int     `yaml:"cell_size"`
	Canvas          int     `yaml:"canvas"`
	MaxDim          int     `yaml:"max_dim"`
	Growth          int     `yaml:"growth"`
	MoveCooldownMs  int64   `yaml:"move_cooldown_ms"`
	SpawnIntervalMs int64   `yaml:"spawn_interval_ms"`
	FallSpeed       float64 `yaml:"fall_speed"`
	TickRate        int     `yaml:"tick_rate"`
	Seed            int64   `yaml:"seed"`
	LogLevel        string  `yaml:"log_level"`
	Sound           bool    `yaml:"sound"`
}

func Default() Config {
	return Config{
		Cols:            model.DefaultCols,
		Rows:            model.DefaultRows,
		CellSize:        model.DefaultCellSize,
		Canvas:          model.DefaultCanvas,
		MaxDim:          model.DefaultMaxDim,
		Growth:          model.DefaultGrowth,
		MoveCooldownMs:  model.DefaultMoveCooldown,
		SpawnIntervalMs: model.DefaultSpawnInterval,
		FallSpeed:       model.DefaultFallSpeed,
		TickRate:        60,
		LogLevel:        "info",
		Sound:           true,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MAZEFALL_* variables when they are set and
// parse cleanly.
func (c *Config) ApplyEnv() {
	c.Seed = envInt64("MAZEFALL_SEED", c.Seed)
	c.Cols = int(envInt64("MAZEFALL_COLS", int64(c.Cols)))
	c.Rows = int(envInt64("MAZEFALL_ROWS", int64(c.Rows)))
	if lvl := os.Getenv("MAZEFALL_LOG_LEVEL"); lvl != "" {
		c.LogLevel = lvl
	}
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Warnf("ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return v
}

func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return errors.Wrapf(model.ErrInvalidTiming, "tick rate %d", c.TickRate)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return errors.Wrap(c.GameConfig().Validate(), "game config")
}

func (c Config) GameConfig() model.Config {
	return model.Config{
		Cols:          c.Cols,
		Rows:          c.Rows,
		CellSize:      c.CellSize,
		Canvas:        c.Canvas,
		MaxDim:        c.MaxDim,
		Growth:        c.Growth,
		MoveCooldown:  c.MoveCooldownMs,
		SpawnInterval: c.SpawnIntervalMs,
		FallSpeed:     c.FallSpeed,
		Seed:          c.Seed,
	}
}

// ConfigureLogging sets the standard logger level from the config.
func (c Config) ConfigureLogging() {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, keeping %s", c.LogLevel, log.GetLevel())
		return
	}
	log.SetLevel(lvl)
}

// ResolveSeed replaces a zero seed with a clock-derived one so the run can be
// logged and replayed.
func (c *Config) ResolveSeed() {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
}

// FromArgs builds the config for a frontend. Precedence is flags, then
// environment, then the -config file, then defaults.
func FromArgs(fs *flag.FlagSet, args []string) (Config, error) {
	path := fs.String("config", "", "YAML config file")
	seed := fs.Int64("seed", 0, "maze seed (0 = random)")
	cols := fs.Int("cols", model.DefaultCols, "starting columns")
	rows := fs.Int("rows", model.DefaultRows, "starting rows")
	level := fs.String("level", "info", "log level")
	sound := fs.Bool("sound", true, "play sound cues")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "cols":
			cfg.Cols = *cols
		case "rows":
			cfg.Rows = *rows
		case "level":
			cfg.LogLevel = *level
		case "sound":
			cfg.Sound = *sound
		}
	})
	cfg.ResolveSeed()
	return cfg, cfg.Validate()
}
