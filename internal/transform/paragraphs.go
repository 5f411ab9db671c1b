package transform

import (
	"wikitext/internal/ast"
	"wikitext/internal/source"
)

// WhitespaceParagraphsToEmpty canonicalizes paragraphs that hold nothing but
// whitespace: their content becomes the empty sequence, the span stays.
var WhitespaceParagraphsToEmpty = &Traverser{
	Name: "whitespace_paragraphs_to_empty",
	Node: whitespaceParagraphsNode,
}

func whitespaceParagraphsNode(el ast.Element, s *Settings) (ast.Element, error) {
	p, ok := el.(*ast.Paragraph)
	if !ok {
		return el, nil
	}
	// Только прямые текстовые дети: абзац с разметкой внутри пустым не
	// считается, даже если она отрисуется в пробелы.
	text, ok := ast.TextValue(p.Content)
	if !ok || !source.IsWhitespace(text) {
		return p, nil
	}
	p.Content = ast.Elements{}
	return p, nil
}

// CollapseParagraphs removes structurally redundant paragraph boundaries: an
// empty paragraph next to a non-empty one is a pure separator and goes away;
// a run of empty paragraphs with no paragraph neighbours keeps a single
// visible break.
var CollapseParagraphs = &Traverser{
	Name: "collapse_paragraphs",
	List: collapseParagraphsList,
}

func collapseParagraphsList(els ast.Elements, s *Settings) (ast.Elements, error) {
	out := make(ast.Elements, 0, len(els))
	i := 0
	for i < len(els) {
		if !isEmptyParagraph(els[i]) {
			out = append(out, els[i])
			i++
			continue
		}
		j := i
		for j < len(els) && isEmptyParagraph(els[j]) {
			j++
		}
		prevIsText := len(out) > 0 && isTextParagraph(out[len(out)-1])
		nextIsText := j < len(els) && isTextParagraph(els[j])
		if !prevIsText && !nextIsText {
			out = append(out, els[i])
		}
		i = j
	}
	return out, nil
}

func isEmptyParagraph(el ast.Element) bool {
	p, ok := el.(*ast.Paragraph)
	return ok && p.Empty()
}

func isTextParagraph(el ast.Element) bool {
	p, ok := el.(*ast.Paragraph)
	return ok && !p.Empty()
}
