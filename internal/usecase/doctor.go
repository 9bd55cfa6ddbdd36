package usecase

import (
	"context"

	"github.com/termhere/termhere/internal/domain"
)

// DoctorInput contains the input for the Doctor use case.
type DoctorInput struct {
	Dir string // Directory config resolution and the sample command use
}

// DoctorOutput describes the terminal setup on this machine.
// Fields are ordered to minimize memory padding.
type DoctorOutput struct {
	Platform   string                  // runtime.GOOS identifier
	Default    *domain.TerminalCommand // Inferred platform default, nil when unsupported
	Command    domain.BuiltCommand     // Command that would run for Dir, empty when unsupported
	Preference domain.Preference       // Configured terminal override
	Terminals  []domain.ProbeResult    // Known terminals and whether they are installed
	Supported  bool                    // Whether the platform is one of the three recognized ones
}

// Doctor reports the effective terminal setup: the inferred default, the
// configured preference, the command that would run, and which known
// terminal emulators are installed.
type Doctor struct {
	config   domain.ConfigLoader
	prober   domain.TerminalProber
	platform string
}

// NewDoctor creates a new Doctor use case. platform is the runtime.GOOS
// identifier of this machine.
func NewDoctor(config domain.ConfigLoader, prober domain.TerminalProber, platform string) *Doctor {
	return &Doctor{
		config:   config,
		prober:   prober,
		platform: platform,
	}
}

// Execute gathers the report. An unsupported platform is a finding, not an
// error: the report carries Supported=false and no default or command.
func (uc *Doctor) Execute(_ context.Context, in DoctorInput) (*DoctorOutput, error) {
	cfg, err := uc.config.Load(in.Dir)
	if err != nil {
		return nil, err
	}

	out := &DoctorOutput{
		Platform:   uc.platform,
		Preference: cfg.TerminalPreference(),
		Terminals:  uc.prober.Probe(uc.platform),
	}

	term, err := domain.InferTerminal(uc.platform)
	if err != nil {
		return out, nil
	}
	out.Supported = true
	out.Default = &term

	cmd, err := domain.BuildCommand(out.Preference, in.Dir, uc.platform)
	if err != nil {
		return nil, err
	}
	out.Command = cmd

	return out, nil
}
