// Package cli provides the command-line interface for termhere.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termhere/termhere/internal/app"
	"github.com/termhere/termhere/internal/usecase"
)

// Command group IDs.
const (
	groupOpen    = "open"
	groupConfig  = "config"
	groupInspect = "inspect"
)

// NewRootCommand creates the root command for termhere.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts struct {
		Binary string
		Args   string
		Repo   bool
		DryRun bool
		Wait   bool
	}

	root := &cobra.Command{
		Use:   "termhere [path]",
		Short: "Open a terminal window at a folder",
		Long: `termhere opens a new terminal window at a folder.

Without arguments it opens a terminal at the current directory. The
terminal emulator is inferred from the platform (powershell on Windows,
Terminal on macOS, gnome-terminal on Linux) and can be overridden per
invocation (--binary, --args), globally (config.toml), or per project
(.termhere.toml).

Examples:
  # Open a terminal at the current directory
  termhere

  # Open a terminal at a specific folder
  termhere ~/projects/api

  # Open at the root of the enclosing git repository
  termhere --repo

  # One-shot custom terminal; every {path} becomes the quoted folder
  termhere --binary alacritty --args "--working-directory {path}"

  # Show the command that would run without launching anything
  termhere --dry-run`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load(".")
			if err != nil {
				// The command about to run reports the load failure itself
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			uc := c.OpenFolderUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.OpenFolderInput{
				Path:   path,
				Binary: opts.Binary,
				Args:   opts.Args,
				Repo:   opts.Repo,
				DryRun: opts.DryRun,
				Wait:   opts.Wait,
			})
			if err != nil {
				return err
			}

			if opts.DryRun {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Command)
			}
			return nil
		},
	}

	root.Flags().StringVar(&opts.Binary, "binary", "", "Terminal binary to launch instead of the platform default")
	root.Flags().StringVar(&opts.Args, "args", "", "Argument template; every {path} becomes the quoted folder path")
	root.Flags().BoolVar(&opts.Repo, "repo", false, "Open at the root of the enclosing git repository")
	root.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the command without launching a terminal")
	root.Flags().BoolVar(&opts.Wait, "wait", false, "Wait for the spawned command to finish")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupOpen, Title: "Opening Terminals:"},
		&cobra.Group{ID: groupConfig, Title: "Configuration:"},
		&cobra.Group{ID: groupInspect, Title: "Inspection:"},
	)

	pickCmd := newPickCommand(c)
	pickCmd.GroupID = groupOpen

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupConfig

	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupInspect

	doctorCmd := newDoctorCommand(c)
	doctorCmd.GroupID = groupInspect

	root.AddCommand(
		pickCmd,
		configCmd,
		historyCmd,
		doctorCmd,
	)

	return root
}
