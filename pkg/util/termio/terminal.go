package termio

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the given file is attached to a terminal, in which
// case it is safe to emit ANSI escapes to it.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
