package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/termhere/termhere/internal/app"
	"github.com/termhere/termhere/internal/domain"
	"github.com/termhere/termhere/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage termhere configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))
	cmd.AddCommand(newConfigEditCommand(c))
	cmd.AddCommand(newConfigPathCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.
The merge order is built-in defaults, then the global file, then the
nearest .termhere.toml walking up from the current directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get current directory: %w", err)
			}

			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{Dir: cwd})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			printConfigSource(w, out.GlobalConfig)
			printConfigSource(w, out.ProjectConfig)
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			if err := toml.NewEncoder(w).Encode(out.EffectiveConfig); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}

	return cmd
}

func printConfigSource(w io.Writer, info domain.ConfigInfo) {
	if info.Exists {
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
	} else {
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate a configuration file template.

By default, creates a .termhere.toml in the current directory.
With --global, creates the global configuration file under the user
config directory instead.

Error conditions:
- Target file already exists: error`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get current directory: %w", err)
			}

			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{
				Dir:    cwd,
				Global: global,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Generate global configuration")

	return cmd
}

// newConfigEditCommand creates the config edit subcommand.
func newConfigEditCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the global configuration in your editor",
		Long: `Open the global configuration file in your editor.

The editor is taken from $EDITOR, then $VISUAL, with vim as fallback.
A missing config file is created from the template first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := c.ConfigManager.GlobalInfo()
			if info.Path == "" {
				return fmt.Errorf("cannot determine global config location")
			}

			if !info.Exists {
				uc := c.InitConfigUseCase()
				out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{Global: true})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			}

			return openEditorFunc(info.Path)
		},
	}

	return cmd
}

// newConfigPathCommand creates the config path subcommand.
func newConfigPathCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get current directory: %w", err)
			}

			w := cmd.OutOrStdout()
			printConfigPath(w, "global", c.ConfigManager.GlobalInfo())
			printConfigPath(w, "project", c.ConfigManager.ProjectInfo(cwd))
			return nil
		},
	}

	return cmd
}

func printConfigPath(w io.Writer, label string, info domain.ConfigInfo) {
	suffix := ""
	if !info.Exists {
		suffix = " (not found)"
	}
	_, _ = fmt.Fprintf(w, "%s: %s%s\n", label, info.Path, suffix)
}
