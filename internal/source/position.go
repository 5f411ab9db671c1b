package source

import (
	"fmt"
)

// Position is a resolved location in the input.
// Line and Col are 1-based; Offset is the byte offset the position was
// derived from. Two positions derived from the same Index are equal iff
// their offsets are equal.
type Position struct {
	Offset uint32 `json:"offset" yaml:"offset"`
	Line   uint32 `json:"line" yaml:"line"`
	Col    uint32 `json:"col" yaml:"col"`
}

// Equal reports whether both positions denote the same offset.
func (p Position) Equal(other Position) bool {
	return p.Offset == other.Offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span bounds the textual extent of a tree node.
// Start.Offset <= End.Offset; End is exclusive.
type Span struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// NewSpan builds a span from two resolved positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

func (s Span) Len() uint32 {
	return s.End.Offset - s.Start.Offset
}

// Contains reports whether other lies fully within s.
func (s Span) Contains(other Span) bool {
	return other.Start.Offset >= s.Start.Offset && other.End.Offset <= s.End.Offset
}

// Cover extends s to include other.
func (s Span) Cover(other Span) Span {
	if other.Start.Offset < s.Start.Offset {
		s.Start = other.Start
	}
	if other.End.Offset > s.End.Offset {
		s.End = other.End
	}
	return s
}

// Merge is the span of a merged node: first start, last end.
func Merge(first, last Span) Span {
	return Span{Start: first.Start, End: last.End}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Col, s.End.Line, s.End.Col)
}
