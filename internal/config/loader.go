package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of every setting.
const envPrefix = "WSTR"

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"strict":     "parse.strict",
	"gap":        "parse.gap",
	"tolerance":  "parse.tolerance",
	"dna":        "parse.dna",
	"collection": "parse.collection",
	"output":     "output.format",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	return v
}

// Load builds the configuration. configPath may be empty; flags may be nil.
// Only flags listed in FlagKeys and present in flags are bound, and a bound
// flag wins only when it was set explicitly.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", configPath, err)
		}
	}
	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %q: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration with no file, flags or environment.
func Default() *Config {
	return &Config{
		Parse: ParseConfig{
			Strict:     DefaultStrict,
			Gap:        DefaultGap,
			Tolerance:  DefaultTolerance,
			DNA:        DefaultDNA,
			Collection: DefaultCollection,
		},
		Output: OutputConfig{Format: DefaultOutputFormat},
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}
