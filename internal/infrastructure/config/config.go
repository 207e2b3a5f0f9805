package config

import (
	"fmt"
)

// Output modes supported by the CLI renderer
const (
	OutputText  = "text"
	OutputPlain = "plain"
)

// Config holds the settings shared by every command
type Config struct {
	Debug  bool   `json:"debug"`
	Output string `json:"output"`
}

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	return Config{
		Debug:  false,
		Output: OutputText,
	}
}

// ErrInvalidSetting creates an error for a setting that cannot be parsed
func ErrInvalidSetting(name, value string) error {
	return fmt.Errorf("invalid value %q for %s", value, name)
}

// Load returns the defaults overlaid by the environment, validated.
func Load(env *EnvLoader) (Config, error) {
	cfg := DefaultConfig()
	if err := env.Apply(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load %s configuration: %w", env.Name(), err)
	}
	if err := NewConfigValidator().Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
