package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pterm/pterm"
)

// HandleFatal is the sole recovery boundary: it reports the error on stderr
// and exits. A prompt interrupt is treated as a clean cancellation.
func HandleFatal(err error) {
	if errors.Is(err, terminal.InterruptErr) || strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.WithWriter(os.Stderr).Println(capitalize(err.Error()))
	os.Exit(1)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
