//go:build !windows

package launcher

import (
	"context"
	"os/exec"
)

// shellCommand runs a command line through sh. The default platform shapes
// (open, gnome-terminal) detach on their own, so the shell exits quickly.
func shellCommand(ctx context.Context, commandLine string) *exec.Cmd {
	// #nosec G204 - command lines are built by domain.BuildCommand from user preferences
	return exec.CommandContext(ctx, "sh", "-c", commandLine)
}
