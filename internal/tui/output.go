package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain is unstyled text for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is lipgloss-styled static output.
	OutputModeStyled
	// OutputModeInteractive is the full-screen Bubble Tea page.
	OutputModeInteractive
)

const fallbackWidth = 100

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode for stdout. plain and noColor force
// plain output; forceColor yields styled output even when stdout is not a
// terminal. CI, NO_COLOR and TERM=dumb are honored.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, isTerminal(os.Stdout), os.LookupEnv)
}

func detectOutputMode(
	forceColor, noColor, plain, tty bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if forceColor {
		return OutputModeStyled
	}
	if termEnv, _ := lookupEnv("TERM"); termEnv == "dumb" {
		return OutputModePlain
	}
	if !tty {
		return OutputModePlain
	}
	if _, ci := lookupEnv("CI"); ci {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the width of stdout, or a fallback when it is not a
// terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
