package cli

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"kilometers.ai/featuremodel/internal/infrastructure/config"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Config        *config.Config
	Logger        *log.Logger
	MainContainer interface{} // Will be set to *di.Container, avoiding circular import
}

// configOverrider is implemented by the main container to apply flag overrides
type configOverrider interface {
	ApplyDebugOverride(bool)
	ApplyOutputOverride(string) error
}

// NewRootCommand creates the base command when called without any subcommands
func NewRootCommand(container *CLIContainer) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "fm",
		Short: "Feature model - build and inspect feature descriptors",
		Long: `fm builds feature descriptors from the command line.

It parses artifact coordinates, assembles immutable OSGi-style
configurations (plain and factory) and composes them into features,
printing the validated result together with its identity hash.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfigurationOverrides(cmd, container); err != nil {
				return fmt.Errorf("failed to apply configuration overrides: %w", err)
			}
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("output", config.OutputText, "Output mode (text or plain)")

	rootCmd.AddCommand(NewArtifactCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))
	rootCmd.AddCommand(NewFeatureCommand(container))
	rootCmd.AddCommand(NewVersionCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// applyConfigurationOverrides applies configuration overrides from command line flags
func applyConfigurationOverrides(cmd *cobra.Command, container *CLIContainer) error {
	mainContainer, ok := container.MainContainer.(configOverrider)
	if !ok {
		// Silently continue if container doesn't support overrides
		return nil
	}

	// Only explicitly set flags override the environment
	if cmd.Flags().Changed("debug") {
		enabled, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		mainContainer.ApplyDebugOverride(enabled)
	}

	if cmd.Flags().Changed("output") {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		if err := mainContainer.ApplyOutputOverride(output); err != nil {
			return fmt.Errorf("failed to override output mode: %w", err)
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
