package output

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled reports whether styled output should be written to w.
// In auto mode color is used only when w is a terminal and the
// environment does not disable it.
func ColorEnabled(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if disableColorOutput() {
		return false
	}
	if forceColorOutput() {
		return true
	}
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func disableColorOutput() bool {
	if termenv.EnvNoColor() {
		return true
	}
	if val, ok := os.LookupEnv("CLICOLOR"); ok && strings.TrimSpace(val) == "0" {
		return true
	}
	if val, ok := os.LookupEnv("TERM"); ok && strings.EqualFold(strings.TrimSpace(val), "dumb") {
		return true
	}
	return false
}

func forceColorOutput() bool {
	if val, ok := os.LookupEnv("CLICOLOR_FORCE"); ok && envTruthy(val) {
		return true
	}
	if val, ok := os.LookupEnv("FORCE_COLOR"); ok && envTruthy(val) {
		return true
	}
	return false
}

func envTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
