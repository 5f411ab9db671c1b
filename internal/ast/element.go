package ast

import (
	"strings"

	"wikitext/internal/source"
)

// Element is a node of the wikitext tree. The set of implementations is
// closed: the grammar produces them, the transformation passes rewrite them,
// and consumers type-switch over the pointer variants below.
type Element interface {
	// Kind returns the lowercase discriminator used in serialized trees.
	Kind() string
	// ElementSpan returns the textual extent of the node in the input.
	ElementSpan() source.Span

	elementNode()
}

// Elements is an ordered sibling sequence. Sibling spans are non-overlapping
// and increase monotonically in offset.
type Elements []Element

// Discriminator values, one per variant.
const (
	KindDocument         = "document"
	KindHeading          = "heading"
	KindParagraph        = "paragraph"
	KindList             = "list"
	KindListItem         = "listitem"
	KindText             = "text"
	KindTemplate         = "template"
	KindTemplateArgument = "templateargument"
	KindFormatted        = "formatted"
	KindLink             = "link"
	KindComment          = "comment"
)

// TextValue flattens a sibling sequence consisting solely of Text nodes into
// one string. Reports false as soon as любой другой вариант встречается —
// вызывающий сам решает, что делать со смешанным содержимым.
func TextValue(els Elements) (string, bool) {
	var sb strings.Builder
	for _, el := range els {
		txt, ok := el.(*Text)
		if !ok {
			return "", false
		}
		sb.WriteString(txt.Value)
	}
	return sb.String(), true
}
