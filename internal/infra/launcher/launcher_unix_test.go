//go:build !windows

package launcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termhere/termhere/internal/domain"
)

func TestLaunch_Success(t *testing.T) {
	client := NewClient()

	results := client.Launch(context.Background(), "true")

	select {
	case res := <-results:
		assert.NoError(t, res.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("no result delivered")
	}
}

func TestLaunch_NonzeroExitCapturesStderr(t *testing.T) {
	client := NewClient()

	results := client.Launch(context.Background(), "echo broken terminal 1>&2; exit 3")

	res := <-results
	require.Error(t, res.Err)

	var le *domain.LaunchError
	require.ErrorAs(t, res.Err, &le)
	assert.Contains(t, le.Message, "exit status 3")
	assert.Contains(t, le.Stderr, "broken terminal")
}

func TestLaunch_IndependentInvocations(t *testing.T) {
	// Two launches of the same command are independent processes; both
	// outcomes arrive, one per channel.
	client := NewClient()

	first := client.Launch(context.Background(), "true")
	second := client.Launch(context.Background(), "true")

	assert.NoError(t, (<-first).Err)
	assert.NoError(t, (<-second).Err)
}
