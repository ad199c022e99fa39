package console

import (
	"envtidy/internal/constants"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

var (
	isTTYGlobal bool

	// preferredProfile stores the detected or forced color profile
	preferredProfile termenv.Profile

	colorEnabled bool
)

func init() {
	isTTYGlobal = IsTerminal(os.Stdout)
	preferredProfile = detectProfile()
	colorEnabled = autoColor()
}

// GetPreferredProfile returns the detected or forced color profile
func GetPreferredProfile() termenv.Profile {
	return preferredProfile
}

// SetPreferredProfile explicitly sets the color profile (useful for testing)
func SetPreferredProfile(p termenv.Profile) {
	preferredProfile = p
}

// SetTTY allows forcing the TTY status (useful for testing ANSI output in non-interactive tests).
// Returns the previous value so it can be restored.
func SetTTY(isTTY bool) bool {
	old := isTTYGlobal
	isTTYGlobal = isTTY
	return old
}

// SetColorMode applies an output.color setting: "always", "never" or "auto".
// Unknown values behave like "auto".
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case constants.ColorAlways:
		colorEnabled = true
	case constants.ColorNever:
		colorEnabled = false
	default:
		colorEnabled = autoColor()
	}
}

// ColorEnabled reports whether styled output should be written to stdout.
func ColorEnabled() bool {
	return colorEnabled
}

func autoColor() bool {
	return isTTYGlobal && preferredProfile != termenv.Ascii
}

// detectProfile determines the appropriate color profile based on environment variables.
// Priority: NO_COLOR > COLORTERM > TERM > automatic detection
func detectProfile() termenv.Profile {
	if termenv.EnvNoColor() {
		return termenv.Ascii
	}

	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	switch colorTerm {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "8bit", "256color":
		return termenv.ANSI256
	case "4bit", "16color", "8color", "3bit":
		return termenv.ANSI
	case "1bit", "2color", "mono", "false", "0":
		return termenv.Ascii
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "direct") {
		return termenv.TrueColor
	}
	if strings.Contains(term, "256color") {
		return termenv.ANSI256
	}
	if strings.Contains(term, "16color") {
		return termenv.ANSI
	}
	if term == "dumb" {
		return termenv.Ascii
	}

	return termenv.ColorProfile()
}
