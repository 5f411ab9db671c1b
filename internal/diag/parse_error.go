// Package diag holds the two error shapes the toolchain surfaces — grammar
// failures and transformation failures — and renders both with source
// context.
package diag

import (
	"fmt"
	"strings"

	"wikitext/internal/grammar"
	"wikitext/internal/source"
)

// contextLines is the number of lines to display as error context above and
// below the failing line.
const contextLines = 5

// ParseError is a grammar failure with a window of surrounding source lines
// attached. Context holds raw line contents; ContextStart and ContextEnd are
// the 0-based inclusive bounds of that window in the line table.
type ParseError struct {
	Position     source.Position `json:"position" yaml:"position"`
	Expected     []string        `json:"expected" yaml:"expected"`
	Context      []string        `json:"context" yaml:"context"`
	ContextStart uint32          `json:"context_start" yaml:"context_start"`
	ContextEnd   uint32          `json:"context_end" yaml:"context_end"`
}

// NewParseError attaches source context to a grammar failure. The failing
// line is clamped into the line table before the window is taken, so a
// failure reported past the last line still renders against it.
func NewParseError(f *grammar.Failure, ix *source.Index) *ParseError {
	line := f.Line
	if line > 0 {
		line--
	}
	start, end := ix.ContextWindow(line, contextLines)
	context := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		context = append(context, ix.Line(i).Content)
	}
	return &ParseError{
		Position:     ix.PositionAt(f.Offset),
		Expected:     f.Expected,
		Context:      context,
		ContextStart: start,
		ContextEnd:   end,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message())
}

// Message is the failure text without the position prefix.
func (e *ParseError) Message() string {
	return fmt.Sprintf("could not continue to parse, expected one of: %s",
		strings.Join(quoteExpected(e.Expected), ", "))
}

// quoteExpected quotes whitespace-only terminals so they stay visible.
func quoteExpected(expected []string) []string {
	out := make([]string, 0, len(expected))
	for _, token := range expected {
		if source.IsWhitespace(token) {
			out = append(out, fmt.Sprintf("%q", token))
		} else {
			out = append(out, token)
		}
	}
	return out
}
