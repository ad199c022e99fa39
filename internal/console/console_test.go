package console

import (
	"envtidy/internal/constants"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestSetColorMode(t *testing.T) {
	oldTTY := SetTTY(false)
	oldProfile := GetPreferredProfile()
	oldEnabled := ColorEnabled()
	defer func() {
		SetTTY(oldTTY)
		SetPreferredProfile(oldProfile)
		colorEnabled = oldEnabled
	}()

	SetPreferredProfile(termenv.ANSI256)

	SetColorMode(constants.ColorAuto)
	if ColorEnabled() {
		t.Error("auto mode should be off without a TTY")
	}

	SetTTY(true)
	SetColorMode(constants.ColorAuto)
	if !ColorEnabled() {
		t.Error("auto mode should be on for a color TTY")
	}

	SetPreferredProfile(termenv.Ascii)
	SetColorMode("AUTO")
	if ColorEnabled() {
		t.Error("auto mode should be off for an ASCII profile")
	}

	SetColorMode(constants.ColorAlways)
	if !ColorEnabled() {
		t.Error("always mode should force color")
	}

	SetColorMode(constants.ColorNever)
	if ColorEnabled() {
		t.Error("never mode should disable color")
	}
}

func TestPlainStylesKeepText(t *testing.T) {
	s := PlainStyles()
	for _, input := range []string{"KEY", "tab\tseparated", "  spaced  ", ""} {
		if got := s.Header.Render(input); got != input {
			t.Errorf("plain Render(%q) = %q", input, got)
		}
	}
}

func TestColorStylesStrip(t *testing.T) {
	s := ColorStyles()
	rendered := s.Header.Render("=== Keys with different values ===")
	if !strings.Contains(rendered, "\x1b[") {
		t.Errorf("expected escape codes in %q", rendered)
	}
	if got := Strip(rendered); got != "=== Keys with different values ===" {
		t.Errorf("Strip() = %q", got)
	}
	if w := Width(rendered); w != len("=== Keys with different values ===") {
		t.Errorf("Width() = %d", w)
	}
}
