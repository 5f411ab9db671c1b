package grammar

import (
	"strings"

	"wikitext/internal/ast"
	"wikitext/internal/source"
)

// Parse builds the raw document tree. The block grammar is line-oriented:
// headings and list items come out as flat siblings with inline-only content
// and every other line becomes one paragraph. Nesting is not this package's
// job — the transformation pipeline folds the flat shape afterwards.
//
// Длины строк уже проверены на переполнение в source.NewIndex, поэтому
// преобразования len -> uint32 здесь безопасны.
func Parse(input string, ix *source.Index) (*ast.Document, *Failure) {
	p := &parser{input: input, ix: ix}
	return p.document()
}

type parser struct {
	input string
	ix    *source.Index
}

func (p *parser) document() (*ast.Document, *Failure) {
	content := ast.Elements{}
	for i := uint32(0); i < p.ix.LineCount(); i++ {
		line := p.ix.Line(i)
		var (
			el ast.Element
			f  *Failure
		)
		switch {
		case strings.HasPrefix(line.Content, "="):
			el, f = p.heading(line)
		case line.Content != "" && isListMarker(line.Content[0]):
			el, f = p.listItem(line)
		default:
			el, f = p.paragraph(line)
		}
		if f != nil {
			return nil, f
		}
		content = append(content, el)
	}
	return &ast.Document{
		Span:    p.ix.SpanBetween(0, p.ix.Len()),
		Content: content,
	}, nil
}

// heading parses `^(={1,6}) caption (=+)\s*$`. The opening and closing runs
// are matched greedily and must be equal in length; openers longer than six
// commit the line as a heading and fail it.
func (p *parser) heading(line source.Line) (ast.Element, *Failure) {
	trimmed := strings.TrimRight(line.Content, " \t")
	end := line.Start + uint32(len(trimmed))
	c := newCursor(p.input, line.Start, end)
	opens := c.EatRun('=')
	if opens > 6 {
		return nil, p.fail(line.Start+6, TermCaption)
	}
	closes := trailingRun(trimmed, '=')
	switch {
	case closes == 0:
		return nil, p.fail(end, TermHeadingClose)
	case uint32(len(trimmed)) < opens+closes+1:
		// Закрывающий ряд перекрывается с открывающим: между ними нет
		// ни одного байта под заголовок.
		return nil, p.fail(end, TermCaption)
	case closes != opens:
		return nil, p.fail(end-closes, TermHeadingClose)
	}

	capStart := line.Start + opens
	capEnd := end - closes
	for capStart < capEnd && isInlineSpace(p.input[capStart]) {
		capStart++
	}
	for capEnd > capStart && isInlineSpace(p.input[capEnd-1]) {
		capEnd--
	}
	cc := newCursor(p.input, capStart, capEnd)
	caption, f := p.inline(&cc)
	if f != nil {
		return nil, f
	}
	return &ast.Heading{
		Span:    p.ix.SpanBetween(line.Start, end),
		Level:   uint8(opens),
		Caption: caption,
		Content: ast.Elements{},
	}, nil
}

// listItem parses `^([*#;:]+)\s*rest`. Depth counts the marker run, the kind
// comes from the last marker. Items stay flat siblings here.
func (p *parser) listItem(line source.Line) (ast.Element, *Failure) {
	end := line.Start + uint32(len(line.Content))
	c := newCursor(p.input, line.Start, end)
	var last byte
	start := c.Mark()
	for isListMarker(c.Peek()) {
		last = c.Bump()
	}
	depth := c.Off() - uint32(start)
	for isInlineSpace(c.Peek()) {
		c.Bump()
	}
	content, f := p.inline(&c)
	if f != nil {
		return nil, f
	}
	return &ast.ListItem{
		Span:     p.ix.SpanBetween(line.Start, end),
		Depth:    depth,
		ItemKind: kindOf(last),
		Content:  content,
	}, nil
}

// paragraph wraps one line of running text. Whitespace-only and empty lines
// become whitespace paragraphs; the pipeline erases them later.
func (p *parser) paragraph(line source.Line) (ast.Element, *Failure) {
	end := line.Start + uint32(len(line.Content))
	c := newCursor(p.input, line.Start, end)
	content, f := p.inline(&c)
	if f != nil {
		return nil, f
	}
	return &ast.Paragraph{
		Span:    p.ix.SpanBetween(line.Start, end),
		Content: content,
	}, nil
}

func (p *parser) fail(off uint32, expected ...string) *Failure {
	return &Failure{
		Offset:   off,
		Line:     p.ix.PositionAt(off).Line,
		Expected: expected,
	}
}

func (p *parser) spanFrom(c *Cursor, m Mark) source.Span {
	return p.ix.SpanBetween(uint32(m), c.Off())
}

func isListMarker(b byte) bool {
	return b == '*' || b == '#' || b == ';' || b == ':'
}

func isInlineSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

func kindOf(marker byte) ast.ListKind {
	switch marker {
	case '*':
		return ast.ListUnordered
	case '#':
		return ast.ListOrdered
	}
	return ast.ListDefinition
}

func trailingRun(s string, b byte) uint32 {
	var n uint32
	for i := len(s) - 1; i >= 0 && s[i] == b; i-- {
		n++
	}
	return n
}
