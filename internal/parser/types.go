// Package parser reads panemux command scripts: one layout command per
// line, with # comments and blank lines ignored.
package parser

import (
	"fmt"

	"github.com/bnema/panemux/internal/application/engine"
)

// Statement is one parsed script line.
type Statement struct {
	// Line is the 1-based line number in the source.
	Line int
	// Text is the trimmed source line.
	Text    string
	Command engine.Command
}

// Error reports a line that could not be parsed.
type Error struct {
	Source string // script name, may be empty
	Line   int
	Text   string
	Err    error
}

func (e *Error) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %q: %v", e.Source, e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
