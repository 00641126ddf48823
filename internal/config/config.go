// Package config loads triectl settings from defaults, an optional YAML
// file, TRIECTL_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TRIECTL_DICT.
const EnvPrefix = "TRIECTL"

// Output modes.
const (
	OutputPlain = "plain"
	OutputTable = "table"
)

// Log formats.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all triectl settings.
type Config struct {
	// Dict is the dictionary path; "-" reads standard input.
	Dict     string    `mapstructure:"dict"`
	Wildcard string    `mapstructure:"wildcard"`
	Output   string    `mapstructure:"output"`
	Log      LogConfig `mapstructure:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with triectl defaults and environment
// binding applied. Callers bind flags onto it before Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dict", "-")
	v.SetDefault("wildcard", ".")
	v.SetDefault("output", OutputPlain)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", LogConsole)
}

// BindFlags binds every flag in fs to the key of the same name; a flag
// named "log-level" binds to "log.level".
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", ".")
		err = v.BindPFlag(key, f)
	})
	if err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	return nil
}

// Load reads configPath (if non-empty) into v and unmarshals the result.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Dict == "" {
		return fmt.Errorf("%w: dict path is required", ErrInvalidConfig)
	}
	if utf8.RuneCountInString(c.Wildcard) != 1 || !utf8.ValidString(c.Wildcard) {
		return fmt.Errorf("%w: wildcard must be exactly one character, got %q", ErrInvalidConfig, c.Wildcard)
	}
	if c.WildcardRune() == 0 {
		return fmt.Errorf("%w: wildcard cannot be NUL", ErrInvalidConfig)
	}
	switch c.Output {
	case OutputPlain, OutputTable:
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, c.Output)
	}
	switch c.Log.Format {
	case LogConsole, LogJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// WildcardRune returns the configured wildcard as a rune.
func (c *Config) WildcardRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Wildcard)
	return r
}
