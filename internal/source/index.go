package source

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Line is one line of the input. Content excludes the terminator;
// End accounts for it (End = Start + len(Content) + 1), so the line
// "owns" its terminator slot even on the final, unterminated line.
type Line struct {
	Content string
	Start   uint32
	End     uint32
}

// Index resolves byte offsets of one input to line/column positions.
// It is built once per input and is read-only afterwards, so it is safe
// to share between goroutines.
type Index struct {
	input string
	lines []Line
}

// NewIndex splits the input on '\n' and records the byte extent of every
// line. Concatenating all line contents with "\n" separators reconstructs
// the input exactly.
func NewIndex(input string) *Index {
	if _, err := safecast.Conv[uint32](len(input)); err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}

	parts := strings.Split(input, "\n")
	lines := make([]Line, 0, len(parts))
	pos := uint32(0)
	for _, content := range parts {
		contentLen := uint32(len(content))
		lines = append(lines, Line{
			Content: content,
			Start:   pos,
			End:     pos + contentLen + 1,
		})
		pos += contentLen + 1
	}
	return &Index{input: input, lines: lines}
}

// Input returns the original text the index was built from.
func (ix *Index) Input() string { return ix.input }

// Len returns the byte length of the input.
func (ix *Index) Len() uint32 { return uint32(len(ix.input)) }

// LineCount returns the number of lines in the input.
func (ix *Index) LineCount() uint32 { return uint32(len(ix.lines)) }

// Lines returns the line table.
// ВАЖНО: возвращаемый срез указывает на внутренние данные Index, не модифицировать.
func (ix *Index) Lines() []Line { return ix.lines }

// Line returns the line with the given 0-based index.
func (ix *Index) Line(i uint32) Line {
	if i >= uint32(len(ix.lines)) {
		panic(fmt.Errorf("source: line index %d out of range (%d lines)", i, len(ix.lines)))
	}
	return ix.lines[i]
}

// PositionAt resolves a byte offset to a line/column position.
// Offsets in [0, Len()] are valid; anything beyond is a contract violation
// between the grammar and the index and panics.
func (ix *Index) PositionAt(offset uint32) Position {
	if offset > ix.Len() {
		panic(fmt.Errorf("source: offset %d out of range [0, %d]", offset, ix.Len()))
	}

	// бинпоиск: наибольшая строка с Start <= offset
	lo, hi := 0, len(ix.lines)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if ix.lines[mid].Start <= offset {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi
	if line < 0 {
		line = 0
	}

	return Position{
		Offset: offset,
		Line:   uint32(line) + 1,
		Col:    offset - ix.lines[line].Start + 1,
	}
}

// SpanBetween resolves a [start, end) byte range to a span.
func (ix *Index) SpanBetween(start, end uint32) Span {
	return Span{Start: ix.PositionAt(start), End: ix.PositionAt(end)}
}

// ContextWindow returns the inclusive 0-based window [start, end] of up to
// radius lines on both sides of line, clamped to the document bounds.
func (ix *Index) ContextWindow(line, radius uint32) (start, end uint32) {
	count := ix.LineCount()
	if line >= count {
		line = count - 1
	}
	if line < radius {
		start = 0
	} else {
		start = line - radius
	}
	if line+radius >= count {
		end = count - 1
	} else {
		end = line + radius
	}
	return start, end
}
