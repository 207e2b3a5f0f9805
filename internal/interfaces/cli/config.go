package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kilometers.ai/featuremodel/internal/core/feature"
)

// configOptions holds the flags shared by commands that build configurations
type configOptions struct {
	pid        string
	factoryPID string
	name       string
	set        []string
	list       []string
}

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	opts := &configOptions{}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Build a configuration and print it",
		Long: `Build an immutable configuration from flags and print its
pid, values and identity hash.

Use --pid for a plain configuration, or --factory-pid together with
--name for a factory configuration (pid "<factory-pid>~<name>").

Values given with --set are typed by their text: integers, decimals,
true/false, and strings otherwise. --list stores a string list.`,
		Example: `  fm config --pid com.example.Foo --set port=8080 --set enabled=true
  fm config --factory-pid com.example.Logger --name audit --list levels=info,warn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildConfiguration(opts)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			container.Logger.Printf("Built configuration %s with %d values", c.PID(), c.Len())

			r := newRenderer(cmd, container)
			printConfiguration(r, c)
			return nil
		},
	}

	configCmd.Flags().StringVar(&opts.pid, "pid", "", "Configuration pid")
	configCmd.Flags().StringVar(&opts.factoryPID, "factory-pid", "", "Factory pid of a factory configuration")
	configCmd.Flags().StringVar(&opts.name, "name", "", "Name of a factory configuration")
	configCmd.Flags().StringArrayVar(&opts.set, "set", nil, "Property as key=value (repeatable)")
	configCmd.Flags().StringArrayVar(&opts.list, "list", nil, "String list property as key=a,b,c (repeatable)")
	configCmd.MarkFlagsMutuallyExclusive("pid", "factory-pid")
	configCmd.MarkFlagsMutuallyExclusive("pid", "name")

	return configCmd
}

func buildConfiguration(opts *configOptions) (feature.Configuration, error) {
	var b *feature.ConfigurationBuilder
	switch {
	case opts.factoryPID != "":
		b = feature.NewFactoryConfigurationBuilder(opts.factoryPID, opts.name)
	case opts.pid != "":
		b = feature.NewConfigurationBuilder(opts.pid)
	default:
		return feature.Configuration{}, fmt.Errorf("either --pid or --factory-pid is required")
	}

	for _, pair := range opts.set {
		key, raw, err := splitProperty(pair)
		if err != nil {
			return feature.Configuration{}, err
		}
		b.AddValue(key, inferValue(raw))
	}
	for _, pair := range opts.list {
		key, raw, err := splitProperty(pair)
		if err != nil {
			return feature.Configuration{}, err
		}
		b.AddValue(key, splitList(raw))
	}

	return b.Build()
}

// splitProperty splits a key=value flag argument
func splitProperty(pair string) (string, string, error) {
	key, value, ok := strings.Cut(pair, "=")
	if !ok {
		return "", "", fmt.Errorf("property %q must have the form key=value", pair)
	}
	return key, value, nil
}

// inferValue types a flag value: int64, then float64, then bool, else string
func inferValue(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}

func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ",")
}

func printConfiguration(r *renderer, c feature.Configuration) {
	r.Heading("Configuration")
	r.Field("pid", c.PID())
	if factoryPID, ok := c.FactoryPID(); ok {
		name, _ := c.Name()
		r.Field("factory-pid", factoryPID)
		r.Field("name", name)
	}
	r.Field("hash", formatHash(c.Hash()))

	r.Heading("Values")
	for key, value := range c.All() {
		r.Field(key, formatValue(value))
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}
