package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/termhere/termhere/internal/app"
	"github.com/termhere/termhere/internal/usecase"
)

// historyRow is the presentation form of one history entry.
type historyRow struct {
	Path       string `json:"path"       yaml:"path"`
	Opens      int    `json:"opens"      yaml:"opens"`
	LastOpened string `json:"lastOpened" yaml:"lastOpened"`
}

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the list of recently opened folders",
		Long:  `Manage the list of folders termhere has opened terminals at.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newHistoryListCommand(c))
	cmd.AddCommand(newHistoryClearCommand(c))

	return cmd
}

// newHistoryListCommand creates the history list subcommand.
func newHistoryListCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recently opened folders",
		Long:  `List recently opened folders, most recent first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListHistoryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListHistoryInput{})
			if err != nil {
				return err
			}

			rows := make([]historyRow, 0, len(out.Entries))
			for _, e := range out.Entries {
				rows = append(rows, historyRow{
					Path:       e.Path,
					Opens:      e.Count,
					LastOpened: e.LastOpened.Format("2006-01-02 15:04"),
				})
			}

			w := cmd.OutOrStdout()
			if format != formatText {
				return writeFormatted(w, format, rows)
			}

			if len(rows) == 0 {
				_, _ = fmt.Fprintln(w, "No history recorded yet")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()

			_, _ = fmt.Fprintln(tw, "PATH\tOPENS\tLAST OPENED")
			for _, r := range rows {
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Path, r.Opens, r.LastOpened)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, yaml or json")

	return cmd
}

// newHistoryClearCommand creates the history clear subcommand.
func newHistoryClearCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all history entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ClearHistoryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ClearHistoryInput{})
			if err != nil {
				return err
			}

			noun := "entries"
			if out.Removed == 1 {
				noun = "entry"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d history %s\n", out.Removed, noun)
			return nil
		},
	}

	return cmd
}
