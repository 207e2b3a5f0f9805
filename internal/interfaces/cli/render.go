package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"kilometers.ai/featuremodel/internal/infrastructure/config"
)

// renderer writes command results either styled (text) or unstyled (plain).
type renderer struct {
	out   io.Writer
	plain bool

	heading lipgloss.Style
	key     lipgloss.Style
	muted   lipgloss.Style
}

func newRenderer(cmd *cobra.Command, container *CLIContainer) *renderer {
	out := cmd.OutOrStdout()
	r := &renderer{
		out:   out,
		plain: container.Config != nil && container.Config.Output == config.OutputPlain,
	}

	// Color support follows the destination writer, not the process stdout
	lr := lipgloss.NewRenderer(out)
	r.heading = lr.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	r.key = lr.NewStyle().Foreground(lipgloss.Color("245"))
	r.muted = lr.NewStyle().Foreground(lipgloss.Color("240"))
	return r
}

func (r *renderer) Heading(title string) {
	if r.plain {
		fmt.Fprintln(r.out, title)
		return
	}
	fmt.Fprintln(r.out, r.heading.Render(title))
}

func (r *renderer) Field(key string, value any) {
	if r.plain {
		fmt.Fprintf(r.out, "%s: %v\n", key, value)
		return
	}
	fmt.Fprintf(r.out, "  %s %v\n", r.key.Render(key+":"), value)
}

func (r *renderer) Item(value any) {
	if r.plain {
		fmt.Fprintf(r.out, "%v\n", value)
		return
	}
	fmt.Fprintf(r.out, "  %s %v\n", r.muted.Render("-"), value)
}

// formatHash renders a 64-bit hash as fixed-width hex
func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
