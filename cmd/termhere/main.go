// Package main is the entry point for the termhere CLI.
package main

import (
	"os"

	"github.com/termhere/termhere/internal/app"
	"github.com/termhere/termhere/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and maps the outcome to an exit code.
// Errors reach the user exactly once, through the notifier.
func run(args []string) int {
	container := app.New()

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		container.Notifier.Error(err.Error())
		return 1
	}
	return 0
}
