package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cashflow/internal/model"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{EnvYears, EnvSeed, EnvAddr, EnvLocale, EnvTheme} {
		t.Setenv(k, "")
	}
	SetPath("")
	t.Cleanup(func() { SetPath("") })
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestPath_UsesXDG(t *testing.T) {
	dir := useTempConfig(t)
	assert.Equal(t, filepath.Join(dir, "cashflow", "config.toml"), Path())

	SetPath("/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", Path())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfig(t)

	seed := int64(1234)
	cfg := DefaultConfig()
	cfg.General.Years = 3
	cfg.General.Months = []string{"Jan", "Jun"}
	cfg.General.SelectedYears = []int{2024}
	cfg.Generator.Seed = &seed
	cfg.Appearance.Locale = "pt-BR"

	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_ParseError(t *testing.T) {
	useTempConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(Path()), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general\nyears = "), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	useTempConfig(t)
	t.Setenv(EnvYears, "4")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvAddr, "0.0.0.0:9000")
	t.Setenv(EnvLocale, "pt-BR")
	t.Setenv(EnvTheme, "terminal")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.General.Years)
	require.NotNil(t, cfg.Generator.Seed)
	assert.Equal(t, int64(99), *cfg.Generator.Seed)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, "pt-BR", cfg.Appearance.Locale)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	useTempConfig(t)
	cfg := DefaultConfig()
	cfg.General.Years = 2
	require.NoError(t, Save(cfg))

	t.Setenv(EnvYears, "4")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvAddr, "0.0.0.0:9000")

	got, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, 2, got.General.Years)
	assert.Nil(t, got.Generator.Seed)
	assert.Equal(t, DefaultConfig().Server.Addr, got.Server.Addr)

	merged, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, merged.General.Years)
}

func TestLoad_BadEnv(t *testing.T) {
	useTempConfig(t)
	t.Setenv(EnvYears, "three")

	_, err := Load()
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestLoadEnv_DotenvFile(t *testing.T) {
	useTempConfig(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CASHFLOW_YEARS=2\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv(EnvYears) })
	require.NoError(t, os.Unsetenv(EnvYears))

	require.NoError(t, LoadEnv(envFile))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.General.Years)
}

func TestLoadEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero years", func(c *Config) { c.General.Years = 0 }, true},
		{"above max", func(c *Config) { c.General.Years = 6 }, true},
		{"zero max", func(c *Config) { c.General.MaxYears = 0 }, true},
		{"bad month", func(c *Config) { c.General.Months = []string{"Jan", "Foo"} }, true},
		{"portuguese months", func(c *Config) { c.General.Months = []string{"Fev", "Dez"} }, false},
		{"bad locale", func(c *Config) { c.Appearance.Locale = "not a locale!" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMonthSelection(t *testing.T) {
	cfg := DefaultConfig()
	months, err := cfg.MonthSelection()
	require.NoError(t, err)
	assert.Equal(t, model.Months, months)

	cfg.General.Months = []string{"Mar,Apr"}
	months, err = cfg.MonthSelection()
	require.NoError(t, err)
	assert.Equal(t, []model.Month{model.Mar, model.Apr}, months)
}
