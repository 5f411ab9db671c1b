package transform

import "wikitext/internal/ast"

// FoldHeadings nests flat heading markers: a heading owns every following
// sibling up to the next heading of equal or lower level.
var FoldHeadings = &Traverser{
	Name: "fold_headings",
	List: foldHeadingsList,
}

// foldHeadingsList is a stack fold keyed by heading level. Elements between
// headings accumulate in the innermost open heading; popping a heading seals
// its content and extends its span over it.
func foldHeadingsList(els ast.Elements, s *Settings) (ast.Elements, error) {
	out := ast.Elements{}
	var stack []*ast.Heading

	appendTo := func(el ast.Element) {
		if len(stack) == 0 {
			out = append(out, el)
			return
		}
		top := stack[len(stack)-1]
		top.Content = append(top.Content, el)
	}
	pop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n := len(top.Content); n > 0 {
			top.Span = top.Span.Cover(top.Content[n-1].ElementSpan())
		}
		appendTo(top)
	}

	for _, el := range els {
		h, ok := el.(*ast.Heading)
		if !ok {
			appendTo(el)
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			pop()
		}
		stack = append(stack, h)
	}
	for len(stack) > 0 {
		pop()
	}
	return out, nil
}
