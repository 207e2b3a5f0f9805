package config

import (
	"fmt"
	"slices"
)

// ConfigValidator validates configuration values
type ConfigValidator struct {
	outputs []string
}

// NewConfigValidator creates a new configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{
		outputs: []string{OutputText, OutputPlain},
	}
}

// ValidateOutput validates an output mode
func (v *ConfigValidator) ValidateOutput(output string) error {
	if output == "" {
		return fmt.Errorf("output mode cannot be empty")
	}
	if !slices.Contains(v.outputs, output) {
		return fmt.Errorf("unsupported output mode: %s (must be one of %v)", output, v.outputs)
	}
	return nil
}

// Validate validates a complete configuration
func (v *ConfigValidator) Validate(cfg Config) error {
	if err := v.ValidateOutput(cfg.Output); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
