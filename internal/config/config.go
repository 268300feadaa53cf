package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/workcounter/internal/domain"
)

// Config holds the runtime settings of workcounter.
type Config struct {
	DBPath      string   `toml:"db_path" validate:"required"`
	Required    Duration `toml:"required" validate:"gt=0"`
	LogUseCases bool     `toml:"log_use_cases"`
	TimeFormat  string   `toml:"time_format" validate:"required"`
	LogLimit    int      `toml:"log_limit" validate:"min=0"`
}

// Duration is a time.Duration that decodes from strings such as "8h30m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("duration must be positive, got %s", v)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	dbPath := filepath.Join(".workcounter", "workcounter.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, dbPath)
	}
	return Config{
		DBPath:     dbPath,
		Required:   Duration{domain.DefaultRequired},
		TimeFormat: "03:04 PM",
		LogLimit:   50,
	}
}

// Path returns the config file location: WORKCOUNTER_CONFIG if set, otherwise
// workcounter/config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv("WORKCOUNTER_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(dir, "workcounter", "config.toml"), nil
}

// Load builds the configuration from defaults, the config file (if present)
// and environment variables, in that order, and validates the result.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		return cfg, err
	}
	if err := cfg.LoadFile(path); err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	return cfg, cfg.Validate()
}

// LoadFile overlays values from a TOML file. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	_, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays WORKCOUNTER_* environment variables. Unparseable values
// are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("WORKCOUNTER_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("WORKCOUNTER_REQUIRED_HOURS"); v != "" {
		if h, err := strconv.ParseFloat(v, 64); err == nil && h > 0 {
			c.Required = Duration{time.Duration(h * float64(time.Hour))}
		}
	}
	if v := os.Getenv("WORKCOUNTER_LOG_USECASES"); v != "" {
		c.LogUseCases, _ = strconv.ParseBool(v)
	}
}
