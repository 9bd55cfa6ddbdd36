//go:build windows

package launcher

import (
	"context"
	"os/exec"
	"syscall"
)

// shellCommand runs a command line through cmd.exe. start is a cmd builtin
// and cmd re-parses its command line itself, so the line is handed over
// verbatim via CmdLine instead of Go's per-argument quoting.
func shellCommand(ctx context.Context, commandLine string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: `cmd.exe /d /s /c "` + commandLine + `"`,
	}
	return cmd
}
