package repl

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI escape sequences used by the REPL.
const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

// IsTerminal reports whether w is an interactive terminal, which
// enables colored output by default.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// paint wraps s in the given ANSI sequence when color is enabled.
func (r *REPL) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}
