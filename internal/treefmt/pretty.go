package treefmt

import (
	"fmt"
	"io"

	"wikitext/internal/ast"
)

// Pretty writes an indented dump of the tree: one element per line with its
// kind, details and span, labeled field blocks for elements that carry more
// than one child sequence.
func Pretty(w io.Writer, el ast.Element) error {
	return prettyElement(w, el, "")
}

func prettyElement(w io.Writer, el ast.Element, indent string) error {
	label, groups := describe(el)
	if _, err := fmt.Fprintf(w, "%s%s (span: %s)\n", indent, label, el.ElementSpan()); err != nil {
		return err
	}

	groups = nonEmptyGroups(groups)
	// Одна безымянная группа пишется без заголовка поля.
	if len(groups) == 1 && groups[0].label == "" {
		return prettyElements(w, groups[0].items, indent+"  ")
	}
	for _, g := range groups {
		if _, err := fmt.Fprintf(w, "%s  %s:\n", indent, g.label); err != nil {
			return err
		}
		if err := prettyElements(w, g.items, indent+"    "); err != nil {
			return err
		}
	}
	return nil
}

func prettyElements(w io.Writer, els ast.Elements, indent string) error {
	for _, el := range els {
		if err := prettyElement(w, el, indent); err != nil {
			return err
		}
	}
	return nil
}
