package launcher

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termhere/termhere/internal/domain"
)

func TestLaunch_SpawnFailure(t *testing.T) {
	// Setup: a command constructor pointing at a binary that cannot exist.
	client := NewClient()
	client.SetCommandFunc(func(ctx context.Context, commandLine string) *exec.Cmd {
		return exec.CommandContext(ctx, "/nonexistent/termhere-test-binary")
	})

	// Execute
	results := client.Launch(context.Background(), "whatever")

	// Assert: exactly one failure, then the channel closes.
	res, ok := <-results
	require.True(t, ok)
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, domain.ErrLaunchFailed)

	var le *domain.LaunchError
	require.ErrorAs(t, res.Err, &le)
	assert.NotEmpty(t, le.Message)

	_, ok = <-results
	assert.False(t, ok, "channel must close after the single result")
}

func TestLaunch_PassesCommandLineThrough(t *testing.T) {
	var gotLine string
	client := NewClient()
	client.SetCommandFunc(func(ctx context.Context, commandLine string) *exec.Cmd {
		gotLine = commandLine
		return exec.CommandContext(ctx, "/nonexistent/termhere-test-binary")
	})

	<-client.Launch(context.Background(), `gnome-terminal --working-directory="/tmp"`)

	assert.Equal(t, `gnome-terminal --working-directory="/tmp"`, gotLine)
}

func TestLaunch_DoesNotBlock(t *testing.T) {
	client := NewClient()
	client.SetCommandFunc(func(ctx context.Context, commandLine string) *exec.Cmd {
		return exec.CommandContext(ctx, "/nonexistent/termhere-test-binary")
	})

	done := make(chan struct{})
	go func() {
		client.Launch(context.Background(), "x")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Launch blocked the calling goroutine")
	}
}
