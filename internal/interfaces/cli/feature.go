package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kilometers.ai/featuremodel/internal/core/feature"
)

// NewFeatureCommand creates the feature command
func NewFeatureCommand(container *CLIContainer) *cobra.Command {
	var (
		title       string
		description string
		bundles     []string
		configs     []string
	)

	featureCmd := &cobra.Command{
		Use:   "feature <group:artifact:version[:type[:classifier]]>",
		Short: "Assemble a feature from bundles and configurations",
		Long: `Assemble a feature from its id, bundles and configurations and
print the result.

Each --config takes a pid. A pid of the form "<factory-pid>~<name>"
creates a factory configuration. Configurations built this way carry
no values; use "fm config" to inspect valued configurations.`,
		Example: `  fm feature org.example:app:1.0.0:slingosgifeature \
    --title App --bundle org.example:api:1.0.0 \
    --config com.example.Foo --config com.example.Logger~audit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := feature.ParseArtifactID(args[0])
			if err != nil {
				return fmt.Errorf("invalid feature id %q: %w", args[0], err)
			}
			artifacts, err := parseArtifacts(bundles)
			if err != nil {
				return err
			}

			b := feature.NewFeatureBuilder(id).
				WithTitle(title).
				WithDescription(description).
				AddBundles(artifacts...)
			for _, pid := range configs {
				c, err := configurationFromPID(pid)
				if err != nil {
					return fmt.Errorf("invalid configuration %q: %w", pid, err)
				}
				b.AddConfigurations(c)
			}

			f, err := b.Build()
			if err != nil {
				return fmt.Errorf("invalid feature: %w", err)
			}
			container.Logger.Printf("Built feature %s with %d bundles", f.ID(), len(f.Bundles()))

			printFeature(newRenderer(cmd, container), f)
			return nil
		},
	}

	featureCmd.Flags().StringVar(&title, "title", "", "Feature title")
	featureCmd.Flags().StringVar(&description, "description", "", "Feature description")
	featureCmd.Flags().StringArrayVar(&bundles, "bundle", nil, "Bundle coordinate (repeatable)")
	featureCmd.Flags().StringArrayVar(&configs, "config", nil, "Configuration pid or factory-pid~name (repeatable)")

	return featureCmd
}

func configurationFromPID(pid string) (feature.Configuration, error) {
	if factoryPID, name, ok := feature.SplitFactoryPID(pid); ok {
		return feature.NewFactoryConfigurationBuilder(factoryPID, name).Build()
	}
	return feature.NewConfigurationBuilder(pid).Build()
}

func printFeature(r *renderer, f feature.Feature) {
	r.Heading("Feature")
	r.Field("id", f.ID())
	if f.Title() != "" {
		r.Field("title", f.Title())
	}
	if f.Description() != "" {
		r.Field("description", f.Description())
	}
	r.Field("hash", formatHash(f.Hash()))

	r.Heading("Bundles")
	for _, a := range f.Bundles() {
		r.Item(a.ID())
	}

	r.Heading("Configurations")
	for _, c := range f.Configurations() {
		r.Item(c.PID())
	}
}
