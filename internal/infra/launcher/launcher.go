// Package launcher spawns built terminal commands through the platform shell.
package launcher

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/termhere/termhere/internal/domain"
)

// CommandFunc builds the *exec.Cmd that runs a command line through the
// platform shell. It is swapped out in tests so no real shell is involved.
type CommandFunc func(ctx context.Context, commandLine string) *exec.Cmd

// Client implements domain.Launcher by handing the built command to the
// platform shell: sh -c on unix, cmd.exe on windows.
type Client struct {
	commandFunc CommandFunc
}

// NewClient creates a new launcher client.
func NewClient() *Client {
	return &Client{
		commandFunc: shellCommand,
	}
}

// SetCommandFunc sets the shell command constructor for testing purposes.
func (c *Client) SetCommandFunc(fn CommandFunc) {
	c.commandFunc = fn
}

// Ensure Client implements domain.Launcher interface.
var _ domain.Launcher = (*Client)(nil)

// Launch starts the command without blocking and returns a buffered channel
// that receives exactly one result when the shell exits. The caller may
// abandon the channel without leaking the goroutine. Once started, the
// spawned process cannot be aborted through this interface.
func (c *Client) Launch(ctx context.Context, cmd domain.BuiltCommand) <-chan domain.LaunchResult {
	results := make(chan domain.LaunchResult, 1)

	execCmd := c.commandFunc(ctx, cmd.String())
	var stderr bytes.Buffer
	execCmd.Stderr = &stderr

	if err := execCmd.Start(); err != nil {
		results <- domain.LaunchResult{Err: &domain.LaunchError{Message: err.Error()}}
		close(results)
		return results
	}

	go func() {
		defer close(results)
		if err := execCmd.Wait(); err != nil {
			results <- domain.LaunchResult{Err: &domain.LaunchError{
				Message: err.Error(),
				Stderr:  stderr.String(),
			}}
			return
		}
		results <- domain.LaunchResult{}
	}()

	return results
}
