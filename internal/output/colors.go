package output

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var term = termenv.NewOutput(os.Stdout, termenv.WithProfile(colorProfile()))

// colorProfile detects what the terminal supports. Piped output gets no color.
func colorProfile() termenv.Profile {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Green renders s in green when the terminal supports color.
func Green(s string) string {
	return term.String(s).Foreground(term.Color("2")).String()
}

// Yellow renders s in yellow when the terminal supports color.
func Yellow(s string) string {
	return term.String(s).Foreground(term.Color("3")).String()
}

// Red renders s in red when the terminal supports color.
func Red(s string) string {
	return term.String(s).Foreground(term.Color("1")).String()
}

// Dim renders s faint when the terminal supports color.
func Dim(s string) string {
	return term.String(s).Faint().String()
}
