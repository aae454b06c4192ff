package termio

import "fmt"

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape represents an ANSI escape code used for formatting text in a terminal.
type AnsiEscape struct {
	escape string
	count  uint
}

// NewAnsiEscape construct an empty escape
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033", 0}
}

// ResetAnsiEscape constructs a reset term.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[0", 1}
}

// BoldAnsiEscape constructs a bold term.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[1", 1}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.with(col + 30)
}

func (p AnsiEscape) with(code uint) AnsiEscape {
	if p.count > 0 {
		return AnsiEscape{fmt.Sprintf("%s;%d", p.escape, code), p.count + 1}
	}
	//
	return AnsiEscape{fmt.Sprintf("%s[%d", p.escape, code), p.count + 1}
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("%sm", p.escape)
}

// Highlighter wraps text in escapes, or leaves it untouched when escapes are
// disabled (e.g. output is not a terminal).
type Highlighter struct {
	enabled bool
}

// NewHighlighter constructs a highlighter which emits escapes only when enabled.
func NewHighlighter(enabled bool) Highlighter {
	return Highlighter{enabled}
}

// Enabled indicates whether escapes are being emitted.
func (p Highlighter) Enabled() bool {
	return p.enabled
}

// Apply wraps the given text in the given escape followed by a reset.
func (p Highlighter) Apply(escape AnsiEscape, text string) string {
	if !p.enabled {
		return text
	}
	//
	return escape.Build() + text + ResetAnsiEscape().Build()
}
