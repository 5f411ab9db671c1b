package transform

import (
	"wikitext/internal/ast"
	"wikitext/internal/source"
)

// CollapseConsecutiveText merges every maximal run of sibling text nodes
// into one node: values concatenate in order, the span stretches from the
// first start to the last end. Running it twice changes nothing.
var CollapseConsecutiveText = &Traverser{
	Name: "collapse_consecutive_text",
	List: collapseTextList,
}

func collapseTextList(els ast.Elements, s *Settings) (ast.Elements, error) {
	out := els[:0]
	for _, el := range els {
		txt, ok := el.(*ast.Text)
		if !ok {
			out = append(out, el)
			continue
		}
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(*ast.Text); ok {
				prev.Value += txt.Value
				prev.Span = source.Merge(prev.Span, txt.Span)
				continue
			}
		}
		out = append(out, txt)
	}
	return out, nil
}
