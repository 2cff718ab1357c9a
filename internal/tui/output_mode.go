package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode is how command output should be presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes Lip Gloss styled text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

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

// envLookup matches os.LookupEnv.
type envLookup func(string) (string, bool)

// DetectOutputMode picks a mode for output written to w from the environment
// and whether w is a terminal.
func DetectOutputMode(w io.Writer) OutputMode {
	f, ok := w.(*os.File)
	return detectOutputMode(os.LookupEnv, ok && isTerminal(f))
}

func detectOutputMode(lookup envLookup, tty bool) OutputMode {
	if !tty {
		return OutputModePlain
	}
	if v, ok := lookup("TERM"); ok && v == "dumb" {
		return OutputModePlain
	}
	if _, ok := lookup("NO_COLOR"); ok {
		return OutputModePlain
	}
	if _, ok := lookup("CI"); ok {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// BrowserSupport reports whether stdout can host the interactive browser and
// whether the browser must render without colour.
func BrowserSupport() (interactive, monochrome bool) {
	return browserSupport(os.LookupEnv, isTerminal(os.Stdout))
}

func browserSupport(lookup envLookup, tty bool) (bool, bool) {
	if !tty {
		return false, true
	}
	_, monochrome := lookup("NO_COLOR")
	if v, ok := lookup("TERM"); ok && v == "dumb" {
		monochrome = true
	}
	return true, monochrome
}

// TerminalWidth returns the width of stdout, or the default when unknown.
func TerminalWidth() int {
	if !isTerminal(os.Stdout) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
