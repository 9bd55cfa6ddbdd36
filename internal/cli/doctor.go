package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/termhere/termhere/internal/app"
	"github.com/termhere/termhere/internal/usecase"
)

// doctorReport is the presentation form of the doctor output.
type doctorReport struct {
	Platform  string           `json:"platform"          yaml:"platform"`
	Supported bool             `json:"supported"         yaml:"supported"`
	Default   string           `json:"default,omitempty" yaml:"default,omitempty"`
	Binary    string           `json:"binary,omitempty"  yaml:"binary,omitempty"`
	Args      string           `json:"args,omitempty"    yaml:"args,omitempty"`
	Command   string           `json:"command,omitempty" yaml:"command,omitempty"`
	Terminals []terminalReport `json:"terminals"         yaml:"terminals"`
}

// terminalReport is one installed-terminal check.
type terminalReport struct {
	Name      string `json:"name"           yaml:"name"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	Available bool   `json:"available"      yaml:"available"`
}

// newDoctorCommand creates the doctor command.
func newDoctorCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Report the terminal setup of this machine",
		Long: `Report the terminal setup of this machine.

Shows the platform, the inferred default terminal, the configured
override, the command termhere would run for the current directory,
and which known terminal emulators are installed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get current directory: %w", err)
			}

			uc := c.DoctorUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DoctorInput{Dir: cwd})
			if err != nil {
				return err
			}

			report := doctorReport{
				Platform:  out.Platform,
				Supported: out.Supported,
				Binary:    out.Preference.Binary,
				Args:      out.Preference.Args,
				Command:   out.Command.String(),
				Terminals: make([]terminalReport, 0, len(out.Terminals)),
			}
			if out.Default != nil {
				report.Default = strings.Join(append([]string{out.Default.Binary}, out.Default.Args...), " ")
			}
			for _, t := range out.Terminals {
				report.Terminals = append(report.Terminals, terminalReport{
					Name:      t.Name,
					Path:      t.Path,
					Available: t.Available,
				})
			}

			w := cmd.OutOrStdout()
			if format != formatText {
				return writeFormatted(w, format, report)
			}

			printDoctorReport(w, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, yaml or json")

	return cmd
}

// printDoctorReport renders the report for humans.
func printDoctorReport(w io.Writer, report doctorReport) {
	_, _ = fmt.Fprintf(w, "Platform: %s\n", report.Platform)

	if !report.Supported {
		_, _ = fmt.Fprintln(w, "This platform is not supported; termhere knows windows, darwin and linux")
		return
	}

	_, _ = fmt.Fprintf(w, "Default:  %s\n", report.Default)
	if report.Binary != "" {
		_, _ = fmt.Fprintf(w, "Binary:   %s (configured)\n", report.Binary)
	}
	if report.Args != "" {
		_, _ = fmt.Fprintf(w, "Args:     %s (configured)\n", report.Args)
	}
	_, _ = fmt.Fprintf(w, "Command:  %s\n", report.Command)

	if len(report.Terminals) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Terminals:")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()

	for _, t := range report.Terminals {
		mark := "✗"
		if t.Available {
			mark = "✓"
		}
		_, _ = fmt.Fprintf(tw, "  %s %s\t%s\n", mark, t.Name, t.Path)
	}
}
