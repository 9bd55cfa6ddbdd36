package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferTerminal(t *testing.T) {
	tests := []struct {
		name       string
		platform   string
		wantBinary string
		wantArgs   []string
	}{
		{
			name:       "windows",
			platform:   PlatformWindows,
			wantBinary: "powershell",
			wantArgs:   []string{"-noexit"},
		},
		{
			name:       "darwin",
			platform:   PlatformDarwin,
			wantBinary: "Terminal",
			wantArgs:   nil,
		},
		{
			name:       "linux",
			platform:   PlatformLinux,
			wantBinary: "gnome-terminal",
			wantArgs:   []string{"--working-directory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, err := InferTerminal(tt.platform)

			require.NoError(t, err)
			assert.Equal(t, tt.wantBinary, term.Binary)
			assert.Equal(t, tt.wantArgs, term.Args)
		})
	}
}

func TestInferTerminal_UnsupportedPlatform(t *testing.T) {
	// The identifier vocabulary is runtime.GOOS; anything else fails,
	// including near-misses in the wrong case.
	for _, platform := range []string{"freebsd", "android", "plan9", "Windows", "macOS", ""} {
		t.Run("platform "+platform, func(t *testing.T) {
			_, err := InferTerminal(platform)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedPlatform)

			var upe *UnsupportedPlatformError
			require.ErrorAs(t, err, &upe)
			assert.Equal(t, platform, upe.Platform)
		})
	}
}

func TestBuildCommand_PlatformDefaults(t *testing.T) {
	const folder = "/home/user/My Notes"

	tests := []struct {
		name     string
		platform string
		want     string
	}{
		{
			name:     "linux",
			platform: PlatformLinux,
			want:     `gnome-terminal --working-directory="/home/user/My Notes"`,
		},
		{
			name:     "darwin",
			platform: PlatformDarwin,
			want:     `open -a Terminal "/home/user/My Notes"`,
		},
		{
			name:     "windows",
			platform: PlatformWindows,
			want:     `start "" /D "/home/user/My Notes" powershell -noexit`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildCommand(Preference{}, folder, tt.platform)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())

			// The folder appears exactly once, wrapped in one pair of quotes.
			assert.Equal(t, 1, strings.Count(got.String(), `"`+folder+`"`))
			assert.Equal(t, 1, strings.Count(got.String(), folder))
		})
	}
}

func TestBuildCommand_CustomTemplate(t *testing.T) {
	pref := Preference{
		Binary: "iTerm",
		Args:   `-e "ls {path}"`,
	}

	got, err := BuildCommand(pref, "/home/user/My Notes", PlatformDarwin)

	require.NoError(t, err)
	// The embedded quotes stay unescaped; this literal is the contract.
	assert.Equal(t, `"iTerm" -e "ls "/home/user/My Notes""`, got.String())
	assert.True(t, strings.HasPrefix(got.String(), `"iTerm" `))
}

func TestBuildCommand_CustomTemplateIgnoresPlatformShape(t *testing.T) {
	// A custom binary plus template renders identically on every
	// recognized platform; only the platform check itself remains.
	pref := Preference{Binary: "kitty", Args: "-d {path}"}

	var outputs []string
	for _, platform := range []string{PlatformWindows, PlatformDarwin, PlatformLinux} {
		got, err := BuildCommand(pref, "/srv/data", platform)
		require.NoError(t, err)
		outputs = append(outputs, got.String())
	}

	assert.Equal(t, `"kitty" -d "/srv/data"`, outputs[0])
	assert.Equal(t, outputs[0], outputs[1])
	assert.Equal(t, outputs[1], outputs[2])
}

func TestBuildCommand_TemplateReplacesEveryOccurrence(t *testing.T) {
	pref := Preference{
		Binary: "sh",
		Args:   "-c cd {path} && ls {path} && echo {path}",
	}

	got, err := BuildCommand(pref, "/tmp/x", PlatformLinux)

	require.NoError(t, err)
	assert.Equal(t, `"sh" -c cd "/tmp/x" && ls "/tmp/x" && echo "/tmp/x"`, got.String())
	assert.NotContains(t, got.String(), PathPlaceholder)
}

func TestBuildCommand_CustomBinaryDefaultShape(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		binary   string
		want     string
	}{
		{
			name:     "linux keeps working-directory flag",
			platform: PlatformLinux,
			binary:   "alacritty",
			want:     `alacritty --working-directory="/opt/proj"`,
		},
		{
			name:     "darwin keeps open -a",
			platform: PlatformDarwin,
			binary:   "iTerm",
			want:     `open -a iTerm "/opt/proj"`,
		},
		{
			name:     "windows keeps start shape and default args",
			platform: PlatformWindows,
			binary:   "pwsh",
			want:     `start "" /D "/opt/proj" pwsh -noexit`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildCommand(Preference{Binary: tt.binary}, "/opt/proj", tt.platform)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestBuildCommand_Normalization(t *testing.T) {
	const folder = "/var/log"

	for _, platform := range []string{PlatformWindows, PlatformDarwin, PlatformLinux} {
		t.Run(platform, func(t *testing.T) {
			base, err := BuildCommand(Preference{}, folder, platform)
			require.NoError(t, err)

			// Whitespace-only binary behaves like no binary at all.
			got, err := BuildCommand(Preference{Binary: "   \t"}, folder, platform)
			require.NoError(t, err)
			assert.Equal(t, base, got)

			// Whitespace-only template behaves like no template: the custom
			// binary falls back to the platform default shape.
			withBinary, err := BuildCommand(Preference{Binary: "foot"}, folder, platform)
			require.NoError(t, err)
			got, err = BuildCommand(Preference{Binary: "foot", Args: "  \n "}, folder, platform)
			require.NoError(t, err)
			assert.Equal(t, withBinary, got)

			// Surrounding whitespace is trimmed, not preserved.
			trimmed, err := BuildCommand(Preference{Binary: "  foot "}, folder, platform)
			require.NoError(t, err)
			assert.Equal(t, withBinary, trimmed)
		})
	}
}

func TestBuildCommand_UnsupportedPlatform(t *testing.T) {
	_, err := BuildCommand(Preference{}, "/home/user", "freebsd")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)

	var upe *UnsupportedPlatformError
	require.ErrorAs(t, err, &upe)
	assert.Equal(t, "freebsd", upe.Platform)
}

func TestBuildCommand_UnsupportedPlatformBeatsPreference(t *testing.T) {
	// Even a fully custom preference cannot rescue an unrecognized
	// platform identifier.
	pref := Preference{Binary: "xterm", Args: "-e cd {path}"}

	_, err := BuildCommand(pref, "/home/user", "openbsd")

	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestBuildCommand_Idempotence(t *testing.T) {
	pref := Preference{Binary: "wezterm", Args: "start --cwd {path}"}

	first, err := BuildCommand(pref, "/home/user/My Notes", PlatformLinux)
	require.NoError(t, err)
	second, err := BuildCommand(pref, "/home/user/My Notes", PlatformLinux)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
