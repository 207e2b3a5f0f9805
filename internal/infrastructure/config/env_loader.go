package config

import (
	"os"
	"strconv"
)

// Environment variables read by EnvLoader.
const (
	EnvDebug  = "FM_DEBUG"
	EnvOutput = "FM_OUTPUT"
)

// EnvLoader overlays FM_* environment variables onto a configuration.
type EnvLoader struct {
	lookup func(string) (string, bool)
}

// NewEnvLoader creates a loader reading the process environment.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{lookup: os.LookupEnv}
}

// NewEnvLoaderWithLookup creates a loader reading from lookup (used in tests).
func NewEnvLoaderWithLookup(lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{lookup: lookup}
}

func (l *EnvLoader) Name() string { return "env" }

// Apply overlays the environment onto cfg. Unset or empty variables leave
// the existing value in place.
func (l *EnvLoader) Apply(cfg *Config) error {
	if v, ok := l.lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return ErrInvalidSetting(EnvDebug, v)
		}
		cfg.Debug = debug
	}
	if v, ok := l.lookup(EnvOutput); ok && v != "" {
		cfg.Output = v
	}
	return nil
}
