package config

import "github.com/spf13/viper"

// Default values.
const (
	DefaultStrict       = true
	DefaultGap          = false
	DefaultTolerance    = 0.0
	DefaultDNA          = false
	DefaultCollection   = false
	DefaultOutputFormat = "text"
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "console"
)

// setDefaults registers every key, which also makes it visible to
// AutomaticEnv during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("parse.strict", DefaultStrict)
	v.SetDefault("parse.gap", DefaultGap)
	v.SetDefault("parse.tolerance", DefaultTolerance)
	v.SetDefault("parse.dna", DefaultDNA)
	v.SetDefault("parse.collection", DefaultCollection)
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}
