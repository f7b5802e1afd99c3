// Package diag implements the Diagnostics sink consumed by the code
// generator: error accumulation keyed by source location, and the
// terminal SemanticError raised once gencode finishes a module that
// recorded at least one error.
package diag

import (
	"fmt"

	"github.com/fatih/color"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Location identifies a position in source text: line and column,
// 1-indexed, plus the file it came from.
type Location struct {
	File string
	Line int
	Col  int
}

// String renders a Location as "file:line:col".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// Diagnostic is a single recorded error: a message and the location it
// was reported against.
type Diagnostic struct {
	Msg string
	Loc Location
}

// SemanticError is raised at the end of gencode if the module was marked
// invalid. It carries none of the individual diagnostics itself — those
// were already sent to the Sink as they occurred (§7, "Error
// accumulation") — it is only the terminal failure signal.
type SemanticError struct {
	msg string
}

func (e *SemanticError) Error() string {
	return e.msg
}

// NewSemanticError constructs a SemanticError with the given message.
func NewSemanticError(msg string) *SemanticError {
	return &SemanticError{msg: msg}
}

// Sink accumulates Diagnostics across a single gencode invocation and
// tracks whether the module has been marked invalid. Not safe for
// concurrent use: the code generator is single-threaded (§5).
type Sink struct {
	diagnostics []Diagnostic
	invalid     bool
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Error records a diagnostic against loc and sets the module-invalid
// flag. It never itself aborts lowering; callers continue per §7.
func (s *Sink) Error(msg string, loc Location) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Msg: msg, Loc: loc})
	s.invalid = true
}

// Invalid reports whether any error has been recorded.
func (s *Sink) Invalid() bool {
	return s.invalid
}

// Diagnostics returns every diagnostic recorded so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Print writes every recorded diagnostic to stdout, errors in red, using
// github.com/fatih/color; color.NoColor auto-detects a non-TTY and falls
// back to plain text.
func (s *Sink) Print() {
	red := color.New(color.FgRed, color.Bold)
	for _, d := range s.diagnostics {
		red.Printf("error: ")
		fmt.Printf("%s: %s\n", d.Loc, d.Msg)
	}
}
