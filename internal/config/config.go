// Package config loads and saves the cashflow TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/theirongolddev/cashflow/internal/model"
)

// Config holds all cashflow configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Generator  GeneratorConfig  `toml:"generator"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
}

// GeneralConfig holds the default report selection.
type GeneralConfig struct {
	Years         int      `toml:"years"`
	MaxYears      int      `toml:"max_years"`
	Months        []string `toml:"months,omitempty"`         // empty means every month
	SelectedYears []int    `toml:"selected_years,omitempty"` // empty means every generated year
}

// GeneratorConfig holds random draw settings.
type GeneratorConfig struct {
	Seed *int64 `toml:"seed,omitempty"`
}

// AppearanceConfig holds theme and money formatting settings.
type AppearanceConfig struct {
	Theme          string `toml:"theme"`
	Locale         string `toml:"locale"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr                 string `toml:"addr"`
	ReadHeaderTimeoutSec int    `toml:"read_header_timeout_sec"`
}

// Environment overrides, applied after the config file.
const (
	EnvYears  = "CASHFLOW_YEARS"
	EnvSeed   = "CASHFLOW_SEED"
	EnvAddr   = "CASHFLOW_ADDR"
	EnvLocale = "CASHFLOW_LOCALE"
	EnvTheme  = "CASHFLOW_THEME"
)

var pathOverride string

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Years:    1,
			MaxYears: 5,
		},
		Appearance: AppearanceConfig{
			Theme:          "flexoki-dark",
			Locale:         "en",
			CurrencySymbol: "R$",
		},
		Server: ServerConfig{
			Addr:                 "127.0.0.1:8788",
			ReadHeaderTimeoutSec: 5,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cashflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cashflow")
}

// Path returns the config file path, honoring SetPath.
func Path() string {
	if pathOverride != "" {
		return pathOverride
	}
	return filepath.Join(Dir(), "config.toml")
}

// SetPath overrides the config file location. An empty path restores the default.
func SetPath(p string) {
	pathOverride = p
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// LoadEnv loads KEY=VALUE pairs from the given dotenv files (".env" when none
// are given) without overriding variables already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies environment overrides.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads the config file without environment overrides. Callers that
// write the config back start from here so env values never reach disk.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvYears); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", model.ErrInvalidArgument, EnvYears, v)
		}
		cfg.General.Years = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", model.ErrInvalidArgument, EnvSeed, v)
		}
		cfg.Generator.Seed = &n
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Appearance.Locale = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(Path()), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.General.MaxYears < 1 {
		return fmt.Errorf("%w: max_years must be >= 1, got %d", model.ErrInvalidArgument, c.General.MaxYears)
	}
	if err := c.CheckYears(c.General.Years); err != nil {
		return err
	}
	if _, err := model.ParseMonths(c.General.Months); err != nil {
		return err
	}
	if _, err := language.Parse(c.Appearance.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", model.ErrInvalidArgument, c.Appearance.Locale, err)
	}
	return nil
}

// CheckYears validates a generation span against the configured maximum.
func (c Config) CheckYears(years int) error {
	if years < 1 {
		return fmt.Errorf("%w: years must be >= 1, got %d", model.ErrInvalidArgument, years)
	}
	if years > c.General.MaxYears {
		return fmt.Errorf("%w: years must be <= %d, got %d", model.ErrInvalidArgument, c.General.MaxYears, years)
	}
	return nil
}

// MonthSelection returns the configured months, or every month when unset.
func (c Config) MonthSelection() ([]model.Month, error) {
	months, err := model.ParseMonths(c.General.Months)
	if err != nil {
		return nil, err
	}
	if len(months) == 0 {
		return append([]model.Month(nil), model.Months...), nil
	}
	return months, nil
}
