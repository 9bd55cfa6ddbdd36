package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/termhere/termhere/internal/app"
	"github.com/termhere/termhere/internal/domain"
	"github.com/termhere/termhere/internal/tui"
	"github.com/termhere/termhere/internal/usecase"
)

// runPickerFunc is a function variable for running the picker, allowing it
// to be mocked in tests.
var runPickerFunc = runPicker

// newPickCommand creates the pick command.
func newPickCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a recently opened folder",
		Long: `Pick a folder from the history and open a terminal there.

Shows the recently opened folders in an interactive list. Enter opens
a terminal at the selected folder; esc or q leaves without opening.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListHistoryUseCase().Execute(cmd.Context(), usecase.ListHistoryInput{})
			if err != nil {
				return err
			}

			if len(out.Entries) == 0 {
				if cfg, cfgErr := c.ConfigLoader.Load("."); cfgErr == nil && !cfg.History.Enabled {
					return domain.ErrHistoryDisabled
				}
				c.Notifier.Info("No history yet; open a few folders first")
				return nil
			}

			choice, err := runPickerFunc(out.Entries)
			if err != nil {
				return err
			}
			if choice == "" {
				return nil
			}

			_, err = c.OpenFolderUseCase().Execute(cmd.Context(), usecase.OpenFolderInput{Path: choice})
			return err
		},
	}

	return cmd
}

// runPicker runs the interactive picker and returns the chosen folder,
// or "" when the user left without choosing.
func runPicker(entries []domain.HistoryEntry) (string, error) {
	model := tui.NewPicker(entries)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if picker, ok := final.(*tui.Picker); ok {
		return picker.Choice(), nil
	}
	return "", nil
}
