package grammar

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"wikitext/internal/ast"
)

// inline parses the inline grammar of one line region: plain text, `{{...}}`
// templates, `[[...]]` links, `<!-- -->` comments and quote emphasis. stops
// are literal terminators owned by the caller; the scan ends at the first of
// them (unconsumed) or at the region end, whichever comes first.
func (p *parser) inline(c *Cursor, stops ...string) (ast.Elements, *Failure) {
	els := ast.Elements{}
	textMark := c.Mark()
	flush := func() {
		if uint32(textMark) < c.Off() {
			els = append(els, &ast.Text{
				Span:  p.spanFrom(c, textMark),
				Value: c.Slice(textMark),
			})
		}
	}
	for !c.EOF() && !atAnyStop(c, stops) {
		var (
			el ast.Element
			f  *Failure
		)
		switch {
		case c.StartsWith("<!--"):
			flush()
			el, f = p.comment(c)
		case c.StartsWith("{{"):
			flush()
			el, f = p.template(c)
		case c.StartsWith("[["):
			flush()
			el, f = p.link(c)
		case c.StartsWith(TermBoldClose):
			flush()
			el, f = p.formatted(c, TermBoldClose, ast.MarkupBold)
		case c.StartsWith(TermItalicClose):
			flush()
			el, f = p.formatted(c, TermItalicClose, ast.MarkupItalic)
		default:
			c.Bump()
			continue
		}
		if f != nil {
			return nil, f
		}
		els = append(els, el)
		textMark = c.Mark()
	}
	flush()
	return els, nil
}

func atAnyStop(c *Cursor, stops []string) bool {
	for _, s := range stops {
		if c.StartsWith(s) {
			return true
		}
	}
	return false
}

func (p *parser) comment(c *Cursor) (ast.Element, *Failure) {
	start := c.Mark()
	c.EatString("<!--")
	textMark := c.Mark()
	for !c.EOF() && !c.StartsWith(TermCommentClose) {
		c.Bump()
	}
	if c.EOF() {
		return nil, p.fail(c.Off(), TermCommentClose)
	}
	value := c.Slice(textMark)
	c.EatString(TermCommentClose)
	return &ast.Comment{Span: p.spanFrom(c, start), Value: value}, nil
}

func (p *parser) template(c *Cursor) (ast.Element, *Failure) {
	start := c.Mark()
	c.EatString("{{")
	nameStart := c.Mark()
	rawName, f := p.inline(c, TermPipe, TermTemplateClose)
	if f != nil {
		return nil, f
	}
	if c.EOF() {
		return nil, p.fail(c.Off(), TermPipe, TermTemplateClose)
	}
	name, ok := p.templateName(rawName, nameStart, c.Mark())
	if !ok {
		return nil, p.fail(uint32(nameStart), TermTemplateName)
	}
	args := ast.Elements{}
	for c.StartsWith(TermPipe) {
		argMark := c.Mark()
		c.Bump()
		arg, f := p.templateArgument(c, argMark)
		if f != nil {
			return nil, f
		}
		args = append(args, arg)
	}
	if !c.EatString(TermTemplateClose) {
		return nil, p.fail(c.Off(), TermPipe, TermTemplateClose)
	}
	return &ast.Template{Span: p.spanFrom(c, start), Name: name, Arguments: args}, nil
}

// templateName canonicalizes plain-text names: surrounding whitespace goes
// away and the text is NFC-normalized, чтобы одно и то же имя совпадало
// независимо от юникодной формы во входе. Names containing markup pass
// through untouched. ok is false for names that flatten to nothing.
func (p *parser) templateName(els ast.Elements, start, end Mark) (ast.Elements, bool) {
	txt, plain := ast.TextValue(els)
	if !plain {
		return els, true
	}
	name := norm.NFC.String(strings.TrimSpace(txt))
	if name == "" {
		return nil, false
	}
	return ast.Elements{&ast.Text{
		Span:  p.ix.SpanBetween(uint32(start), uint32(end)),
		Value: name,
	}}, true
}

// templateArgument parses one `|`-separated argument; start marks the `|`.
func (p *parser) templateArgument(c *Cursor, start Mark) (ast.Element, *Failure) {
	probe := c.Mark()
	name, named := p.argumentName(c)
	if !named {
		c.Reset(probe)
	}
	value, f := p.inline(c, TermPipe, TermTemplateClose)
	if f != nil {
		return nil, f
	}
	return &ast.TemplateArgument{
		Span:  p.spanFrom(c, start),
		Name:  name,
		Value: value,
	}, nil
}

// argumentName probes for the `name=` form. The name must be plain text up
// to the first `=`; any markup opener, separator or region end before the
// `=` makes the argument anonymous and the caller rewinds. A `=` with
// nothing but whitespace before it belongs to the value.
func (p *parser) argumentName(c *Cursor) (string, bool) {
	mark := c.Mark()
	for !c.EOF() {
		switch {
		case c.Peek() == '=':
			name := strings.TrimSpace(c.Slice(mark))
			if name == "" {
				return "", false
			}
			c.Bump()
			return name, true
		case c.StartsWith(TermPipe), c.StartsWith(TermTemplateClose),
			c.StartsWith("{{"), c.StartsWith("[["),
			c.StartsWith("<!--"), c.StartsWith(TermItalicClose):
			return "", false
		default:
			c.Bump()
		}
	}
	return "", false
}

func (p *parser) link(c *Cursor) (ast.Element, *Failure) {
	start := c.Mark()
	c.EatString("[[")
	target, f := p.inline(c, TermPipe, TermLinkClose)
	if f != nil {
		return nil, f
	}
	if c.EOF() {
		return nil, p.fail(c.Off(), TermPipe, TermLinkClose)
	}
	caption := ast.Elements{}
	if c.Eat('|') {
		caption, f = p.inline(c, TermLinkClose)
		if f != nil {
			return nil, f
		}
		if c.EOF() {
			return nil, p.fail(c.Off(), TermLinkClose)
		}
	}
	c.EatString(TermLinkClose)
	return &ast.Link{Span: p.spanFrom(c, start), Target: target, Caption: caption}, nil
}

func (p *parser) formatted(c *Cursor, marker string, markup ast.Markup) (ast.Element, *Failure) {
	start := c.Mark()
	c.EatString(marker)
	content, f := p.inline(c, marker)
	if f != nil {
		return nil, f
	}
	if !c.EatString(marker) {
		return nil, p.fail(c.Off(), marker)
	}
	return &ast.Formatted{Span: p.spanFrom(c, start), Markup: markup, Content: content}, nil
}
