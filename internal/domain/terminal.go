// Package domain contains core business entities and interfaces.
package domain

import "strings"

// Platform identifiers, as reported by runtime.GOOS on the supported
// operating systems. These three values are the full compatibility matrix;
// every other identifier is an unsupported platform.
const (
	PlatformWindows = "windows"
	PlatformDarwin  = "darwin"
	PlatformLinux   = "linux"
)

// PathPlaceholder is the literal token users write in argument templates
// where the quoted folder path should be substituted.
const PathPlaceholder = "{path}"

// TerminalCommand is a platform-default terminal invocation: the binary
// name and its default argument tokens. Produced fresh per call, never
// cached or mutated.
type TerminalCommand struct {
	Binary string   // Terminal binary name (e.g., "gnome-terminal")
	Args   []string // Default argument tokens for the platform
}

// Preference is the user-configured terminal override. Both fields are
// optional; empty and whitespace-only values are treated as absent.
type Preference struct {
	Binary string // Custom terminal binary name or path
	Args   string // Argument template; every {path} becomes the quoted folder path
}

// BuiltCommand is a complete command line ready to hand to the platform
// shell. Downstream code never inspects its structure.
type BuiltCommand string

// String returns the command line as a plain string.
func (c BuiltCommand) String() string {
	return string(c)
}

// InferTerminal returns the default terminal invocation for a platform.
// Pure and deterministic; unrecognized platforms fail with
// *UnsupportedPlatformError carrying the offending identifier.
func InferTerminal(platform string) (TerminalCommand, error) {
	switch platform {
	case PlatformWindows:
		// -noexit keeps the window open after any shell command completes.
		return TerminalCommand{Binary: "powershell", Args: []string{"-noexit"}}, nil
	case PlatformDarwin:
		return TerminalCommand{Binary: "Terminal"}, nil
	case PlatformLinux:
		return TerminalCommand{Binary: "gnome-terminal", Args: []string{"--working-directory"}}, nil
	default:
		return TerminalCommand{}, &UnsupportedPlatformError{Platform: platform}
	}
}

// BuildCommand produces the shell command that opens a terminal at
// folderPath on the given platform.
//
// When pref carries no binary, the platform default shape is rendered with
// the inferred terminal. A custom binary combined with a non-empty argument
// template yields `"<binary>" <template>` with every {path} occurrence
// replaced by the quoted folder path; a custom binary alone keeps the
// platform default shape. The folder path is wrapped in exactly one pair of
// double quotes wherever it is interpolated. Quote characters already
// inside the path or template are passed through untouched; paths and
// templates containing double quotes produce broken commands.
func BuildCommand(pref Preference, folderPath, platform string) (BuiltCommand, error) {
	term, err := InferTerminal(platform)
	if err != nil {
		return "", err
	}

	quoted := quotePath(folderPath)
	binary, hasBinary := normalizeField(pref.Binary)
	template, hasTemplate := normalizeField(pref.Args)

	if hasBinary && hasTemplate {
		// The template grants full control over argument order and flags;
		// no platform shape is imposed.
		args := strings.ReplaceAll(template, PathPlaceholder, quoted)
		return BuiltCommand(quotePath(binary) + " " + args), nil
	}

	if hasBinary {
		term.Binary = binary
	}
	return defaultShape(platform, term, quoted), nil
}

// defaultShape renders the per-platform default command. platform has been
// validated by InferTerminal before this is called.
func defaultShape(platform string, term TerminalCommand, quotedPath string) BuiltCommand {
	switch platform {
	case PlatformWindows:
		// start's /D flag sets the new session's working directory; the
		// leading empty string fills start's title slot so the quoted path
		// cannot be consumed as a window title.
		parts := append([]string{"start", `""`, "/D", quotedPath, term.Binary}, term.Args...)
		return BuiltCommand(strings.Join(parts, " "))
	case PlatformDarwin:
		parts := append([]string{"open", "-a", term.Binary}, term.Args...)
		parts = append(parts, quotedPath)
		return BuiltCommand(strings.Join(parts, " "))
	default:
		flag := "--working-directory"
		if len(term.Args) > 0 {
			flag = term.Args[0]
		}
		return BuiltCommand(term.Binary + " " + flag + "=" + quotedPath)
	}
}

// normalizeField trims a preference field and reports whether a value is
// present. Both preference fields go through this one helper so the
// absent-vs-whitespace rule cannot drift between them.
func normalizeField(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// quotePath wraps s in one pair of double quotes. Embedded quotes are not
// escaped.
func quotePath(s string) string {
	return `"` + s + `"`
}
