// Package detect probes the system for installed terminal emulators.
package detect

import (
	"os"
	"os/exec"

	"github.com/termhere/termhere/internal/domain"
)

// linuxTerminals are the known terminal binaries checked on Linux, the
// platform default first.
var linuxTerminals = []string{
	"gnome-terminal",
	"konsole",
	"xfce4-terminal",
	"mate-terminal",
	"tilix",
	"terminator",
	"alacritty",
	"kitty",
	"wezterm",
	"foot",
	"x-terminal-emulator",
	"xterm",
}

// windowsTerminals are the known terminal binaries checked on Windows.
var windowsTerminals = []string{
	"powershell",
	"pwsh",
	"wt",
	"cmd",
	"alacritty",
	"wezterm",
}

// darwinApp is one macOS terminal application and the bundle locations it
// may be installed at.
type darwinApp struct {
	name    string
	bundles []string
}

// darwinApps are the known terminal applications checked on macOS. Terminal
// ships with the system; the rest are common third-party installs.
var darwinApps = []darwinApp{
	{name: "Terminal", bundles: []string{
		"/System/Applications/Utilities/Terminal.app",
		"/Applications/Utilities/Terminal.app",
	}},
	{name: "iTerm", bundles: []string{"/Applications/iTerm.app"}},
	{name: "Alacritty", bundles: []string{"/Applications/Alacritty.app"}},
	{name: "kitty", bundles: []string{"/Applications/kitty.app"}},
	{name: "WezTerm", bundles: []string{"/Applications/WezTerm.app"}},
	{name: "Ghostty", bundles: []string{"/Applications/Ghostty.app"}},
}

// Prober implements domain.TerminalProber by looking up terminal binaries
// on PATH and, on macOS, probing the known application bundle locations.
type Prober struct {
	lookPath func(file string) (string, error)
	stat     func(name string) (os.FileInfo, error)
}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{
		lookPath: exec.LookPath,
		stat:     os.Stat,
	}
}

// SetLookPath sets the PATH lookup function for testing purposes.
func (p *Prober) SetLookPath(fn func(file string) (string, error)) {
	p.lookPath = fn
}

// SetStat sets the file stat function for testing purposes.
func (p *Prober) SetStat(fn func(name string) (os.FileInfo, error)) {
	p.stat = fn
}

// Ensure Prober implements domain.TerminalProber.
var _ domain.TerminalProber = (*Prober)(nil)

// Probe checks the known terminals for the given platform. Unrecognized
// platforms have no known terminals and yield nil.
func (p *Prober) Probe(platform string) []domain.ProbeResult {
	switch platform {
	case domain.PlatformLinux:
		return p.probeBinaries(linuxTerminals)
	case domain.PlatformWindows:
		return p.probeBinaries(windowsTerminals)
	case domain.PlatformDarwin:
		return p.probeDarwin()
	default:
		return nil
	}
}

// probeBinaries checks each candidate binary on PATH.
func (p *Prober) probeBinaries(candidates []string) []domain.ProbeResult {
	results := make([]domain.ProbeResult, 0, len(candidates))
	for _, name := range candidates {
		path, err := p.lookPath(name)
		results = append(results, domain.ProbeResult{
			Name:      name,
			Path:      path,
			Available: err == nil,
		})
	}
	return results
}

// probeDarwin checks the open launcher plus the known application bundles.
func (p *Prober) probeDarwin() []domain.ProbeResult {
	results := make([]domain.ProbeResult, 0, len(darwinApps)+1)

	openPath, err := p.lookPath("open")
	results = append(results, domain.ProbeResult{
		Name:      "open",
		Path:      openPath,
		Available: err == nil,
	})

	for _, app := range darwinApps {
		res := domain.ProbeResult{Name: app.name}
		for _, bundle := range app.bundles {
			if _, err := p.stat(bundle); err == nil {
				res.Path = bundle
				res.Available = true
				break
			}
		}
		results = append(results, res)
	}
	return results
}
