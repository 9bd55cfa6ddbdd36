package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchError(t *testing.T) {
	err := &LaunchError{Message: "exit status 127"}
	assert.Equal(t, "terminal launch failed: exit status 127", err.Error())
	assert.ErrorIs(t, err, ErrLaunchFailed)

	withStderr := &LaunchError{Message: "exit status 1", Stderr: "sh: foo: not found\n"}
	assert.Equal(t, "terminal launch failed: exit status 1: sh: foo: not found", withStderr.Error())
}

func TestLaunchErrorThroughWrapping(t *testing.T) {
	err := fmt.Errorf("open folder: %w", &LaunchError{Message: "boom"})

	var le *LaunchError
	assert.ErrorIs(t, err, ErrLaunchFailed)
	assert.True(t, errors.As(err, &le))
	assert.Equal(t, "boom", le.Message)
}

func TestUnsupportedPlatformErrorMessage(t *testing.T) {
	err := &UnsupportedPlatformError{Platform: "freebsd"}
	assert.Equal(t, `unsupported platform: "freebsd"`, err.Error())
}
