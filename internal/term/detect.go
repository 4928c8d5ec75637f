// Package term decides whether msgprep output should be styled for a human
// at a terminal, and holds the lipgloss styles used for stage banners.
package term

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the output mode for msgprep.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and piped output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is at the terminal.
	ModeStyled
)

// DetectMode determines whether msgprep should emit styled or plain output.
//
// Returns ModePlain if:
//   - stdout is not a terminal (piped output, CI/CD)
//   - MSGPREP_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//
// Returns ModeStyled otherwise.
func DetectMode() Mode {
	// Check environment overrides first
	if os.Getenv("MSGPREP_NON_INTERACTIVE") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}

	return ModeStyled
}

// IsStyled is a convenience function that returns true when output styling
// should be applied.
func IsStyled() bool {
	return DetectMode() == ModeStyled
}
