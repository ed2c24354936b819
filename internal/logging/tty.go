package logging

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/thoreinstein/propman/internal/errors"
)

// ColorMode is the value of the --color flag.
type ColorMode string

const (
	// ColorAuto colours output only on capable terminals.
	ColorAuto ColorMode = "auto"
	// ColorAlways colours output even when it is redirected.
	ColorAlways ColorMode = "always"
	// ColorNever disables colour.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a --color value. The empty string is ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidFlag, "unknown color mode %q", s)
}

// UseColor decides whether output to w should be coloured under mode.
func (m ColorMode) UseColor(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return SupportsColor(w)
	}
}

// IsTTY reports whether w is a terminal. Any writer exposing Fd is checked.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether w is a terminal that accepts ANSI colours.
// NO_COLOR and TERM=dumb disable colour.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
