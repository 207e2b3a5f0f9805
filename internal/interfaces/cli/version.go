package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRenderer(cmd, container)
			r.Heading("fm " + Version)
			r.Field("build time", BuildTime)
			r.Field("go version", goVersion())
			r.Field("platform", runtime.GOOS+"/"+runtime.GOARCH)
			return nil
		},
	}
}
