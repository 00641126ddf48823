package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexKokoz/Algs4/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies the built-in defaults.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "-", cfg.Dict)
	assert.Equal(t, '.', cfg.WildcardRune())
	assert.Equal(t, config.OutputPlain, cfg.Output)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.LogConsole, cfg.Log.Format)
}

// TestLoad_FileEnvFlags checks precedence: flag > env > file > default.
func TestLoad_FileEnvFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triectl.yaml")
	yaml := "dict: words.txt\nwildcard: \"?\"\noutput: table\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("TRIECTL_LOG_LEVEL", "warn")

	v := config.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output", config.OutputPlain, "")
	require.NoError(t, config.BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--output=plain"}))

	cfg, err := config.Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, "words.txt", cfg.Dict)
	assert.Equal(t, '?', cfg.WildcardRune())
	assert.Equal(t, "warn", cfg.Log.Level, "env overrides file")
	assert.Equal(t, config.LogJSON, cfg.Log.Format)
	assert.Equal(t, config.OutputPlain, cfg.Output, "flag overrides file")
}

// TestLoad_MissingFile surfaces the read error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// TestValidate rejects bad settings.
func TestValidate(t *testing.T) {
	base := config.Config{Dict: "-", Wildcard: ".", Output: config.OutputPlain, Log: config.LogConfig{Level: "info", Format: config.LogConsole}}
	require.NoError(t, base.Validate())

	tests := map[string]func(c *config.Config){
		"empty dict":       func(c *config.Config) { c.Dict = "" },
		"long wildcard":    func(c *config.Config) { c.Wildcard = "??" },
		"empty wildcard":   func(c *config.Config) { c.Wildcard = "" },
		"invalid wildcard": func(c *config.Config) { c.Wildcard = "\xff" },
		"nul wildcard":     func(c *config.Config) { c.Wildcard = "\x00" },
		"bad output":       func(c *config.Config) { c.Output = "xml" },
		"bad log format":   func(c *config.Config) { c.Log.Format = "logfmt" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

// TestValidate_ReplacementCharWildcard accepts a literal U+FFFD wildcard.
func TestValidate_ReplacementCharWildcard(t *testing.T) {
	c := config.Config{Dict: "-", Wildcard: "\uFFFD", Output: config.OutputPlain, Log: config.LogConfig{Level: "info", Format: config.LogConsole}}
	require.NoError(t, c.Validate())
	assert.Equal(t, '\uFFFD', c.WildcardRune())
}
