// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"go.trai.ch/todo/internal/core/domain"
	"golang.org/x/term"
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdin and stdout are terminals and if CI environment variables are set.
func DetectEnvironment() domain.OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	return detect(isTTY, os.Getenv("CI"))
}

func detect(isTTY bool, ci string) domain.OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return domain.OutputLinear
	}
	return domain.OutputTUI
}

// ResolveMode applies a user override to the detected mode.
// userFlag should be one of: "auto", "tui", "linear", "ci", or empty.
// The result is never OutputAuto unless autoDetected is.
func ResolveMode(autoDetected domain.OutputMode, userFlag string) domain.OutputMode {
	switch userFlag {
	case "tui":
		return domain.OutputTUI
	case "linear", "ci":
		return domain.OutputLinear
	default:
		return autoDetected
	}
}
