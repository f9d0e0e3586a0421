// Package config holds the generator configuration and its loading from
// environment variables.
package config

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "FIBSEQ_"

// DefaultLogComponent is the component name attached to log entries.
const DefaultLogComponent = "fibseq"

// Config configures a sequence generator.
type Config struct {
	// LogLevel is a zerolog level name. Empty disables logging.
	LogLevel string
	// LogComponent is the component field attached to every log entry.
	LogComponent string
	// Strict rejects negative lengths instead of returning an empty sequence.
	Strict bool
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		LogComponent: DefaultLogComponent,
	}
}
