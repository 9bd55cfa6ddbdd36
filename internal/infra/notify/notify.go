// Package notify renders user-facing notifications on the CLI.
package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/termhere/termhere/internal/domain"
)

// Notification styles.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B894"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D63031"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72"))
)

// Ensure CLI implements domain.Notifier.
var _ domain.Notifier = (*CLI)(nil)

// CLI surfaces outcomes as styled lines: successes and neutral messages on
// stdout, failures on stderr.
type CLI struct {
	out    io.Writer
	errOut io.Writer
}

// NewCLI creates a new CLI notifier writing to the given streams.
func NewCLI(out, errOut io.Writer) *CLI {
	return &CLI{
		out:    out,
		errOut: errOut,
	}
}

// Success reports a successful launch.
func (c *CLI) Success(msg string) {
	_, _ = fmt.Fprintln(c.out, successStyle.Render("✓ "+msg))
}

// Info reports a neutral message.
func (c *CLI) Info(msg string) {
	_, _ = fmt.Fprintln(c.out, infoStyle.Render(msg))
}

// Error reports a failure.
func (c *CLI) Error(msg string) {
	_, _ = fmt.Fprintln(c.errOut, errorStyle.Render("✗ "+msg))
}
