package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: []string{"stderr"},
		},
		Dice: DiceConfig{
			Source: "seeded",
			Seed:   7,
		},
		Content: ContentConfig{
			TemplatesDir: "content/templates",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
dice:
  source: seeded
  seed: 1234
content:
  templates_dir: /srv/templates
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"stderr"}, cfg.Logging.Output)
	assert.Equal(t, "seeded", cfg.Dice.Source)
	assert.Equal(t, uint64(1234), cfg.Dice.Seed)
	assert.Equal(t, "/srv/templates", cfg.Content.TemplatesDir)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "crypto", cfg.Dice.Source)
	assert.Equal(t, "content/templates", cfg.Content.TemplatesDir)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TRAVELLER_DICE_SOURCE", "seeded")
	t.Setenv("TRAVELLER_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "seeded", cfg.Dice.Source)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dice:\n  source: quantum\n"), 0644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dice.source")
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("logging.level", "error")
	v.Set("logging.format", "console")
	v.Set("dice.source", "crypto")
	v.Set("content.templates_dir", "x")

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "dice.source")
	assert.Contains(t, err.Error(), "content.templates_dir")
}

func TestValidate_EmptyOutputEntry(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Output = []string{"stderr", ""}
	assert.Error(t, cfg.Validate())
}

func TestProperty_InvalidLogLevelRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.StringMatching(`[a-z]{1,10}`).Filter(func(s string) bool {
			return s != "debug" && s != "info" && s != "warn" && s != "error"
		}).Draw(t, "level")
		cfg := validConfig()
		cfg.Logging.Level = level
		if cfg.Validate() == nil {
			t.Fatalf("expected level %q to be rejected", level)
		}
	})
}

func TestProperty_AnySeedValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Dice.Seed = rapid.Uint64().Draw(t, "seed")
		if err := cfg.Validate(); err != nil {
			t.Fatalf("seed %d rejected: %v", cfg.Dice.Seed, err)
		}
	})
}
