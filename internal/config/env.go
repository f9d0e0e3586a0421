// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strings"
)

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FIBSEQ_ prefix) to a function that
// applies the env value.
type envOverride struct {
	envKey string
	apply  func(*Config, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"LOG_LEVEL", func(c *Config, v string) {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}},
	{"LOG_COMPONENT", func(c *Config, v string) {
		c.LogComponent = v
	}},
	{"STRICT", func(c *Config, v string) {
		c.Strict = parseBoolEnv(v, c.Strict)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// FromEnv returns Default() with the FIBSEQ_* environment variables applied.
//
// Supported environment variables (all prefixed with FIBSEQ_):
//   - LOG_LEVEL, LOG_COMPONENT, STRICT
func FromEnv() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup is FromEnv with an injectable lookup function. Empty values are
// treated as unset.
func FromLookup(lookup func(key string) (string, bool)) Config {
	cfg := Default()
	for _, o := range envOverrides {
		if val, ok := lookup(EnvPrefix + o.envKey); ok && val != "" {
			o.apply(&cfg, val)
		}
	}
	return cfg
}
