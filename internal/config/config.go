// Package config loads CLI settings from defaults, an optional TOML file,
// VARIATIONS_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix (VARIATIONS_SPAN, ...).
const EnvPrefix = "VARIATIONS"

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Config is the resolved CLI configuration.
type Config struct {
	// Format selects table or yaml output.
	Format string `mapstructure:"format"`
	// Limit caps listed rows; 0 lists everything.
	Limit int `mapstructure:"limit"`
	// MaxSpace refuses to build equivalence tables over larger spaces.
	MaxSpace int64 `mapstructure:"max_space"`

	// Span is the highest relative fret offset (alphabet 0..Span).
	Span int `mapstructure:"span"`
	// Strings is the shape length.
	Strings int `mapstructure:"strings"`

	// Size and Length describe a plain integer space for count/index.
	Size   int `mapstructure:"size"`
	Length int `mapstructure:"length"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", FormatTable)
	v.SetDefault("limit", 0)
	v.SetDefault("max_space", 1_000_000)
	v.SetDefault("span", 4)
	v.SetDefault("strings", 4)
	v.SetDefault("size", 6)
	v.SetDefault("length", 2)
}

// Load resolves the configuration. path may be empty (no file). flags may be
// nil; otherwise every flag is bound under its name with '-' mapped to '_'.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = errors.Wrapf(err, "failed to bind flag --%s", f.Name)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges that the library would otherwise reject later
// with less helpful messages.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatYAML:
	default:
		return errors.WithHintf(errors.Newf("unknown output format %q", c.Format),
			"use --format %s or --format %s", FormatTable, FormatYAML)
	}
	if c.Limit < 0 {
		return errors.Newf("limit must be >= 0, got %d", c.Limit)
	}
	if c.MaxSpace <= 0 {
		return errors.Newf("max_space must be > 0, got %d", c.MaxSpace)
	}

	return nil
}

// CheckSpace returns an error with a hint when count exceeds MaxSpace.
func (c *Config) CheckSpace(count *big.Int) error {
	if count.Cmp(big.NewInt(c.MaxSpace)) > 0 {
		return errors.WithHintf(
			errors.Newf("space of %s sequences exceeds max_space %d", count, c.MaxSpace),
			"lower --span/--strings or raise max_space (flag, %s_MAX_SPACE or config file)", EnvPrefix)
	}

	return nil
}
