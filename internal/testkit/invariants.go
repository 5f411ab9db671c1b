// Package testkit carries invariant checkers shared by tests across
// packages.
package testkit

import (
	"fmt"

	"wikitext/internal/ast"
)

// CheckSpanInvariants walks a tree and reports the first violated span
// invariant:
// 1) every span has start <= end
// 2) every child span is contained in its parent span
// 3) sibling spans do not overlap and increase monotonically
func CheckSpanInvariants(root ast.Element) error {
	sp := root.ElementSpan()
	if sp.Start.Offset > sp.End.Offset {
		return fmt.Errorf("%s: inverted span %s", root.Kind(), sp)
	}
	for _, children := range childLists(root) {
		for i, child := range children {
			cs := child.ElementSpan()
			if !sp.Contains(cs) {
				return fmt.Errorf("%s span %s does not contain child %s span %s",
					root.Kind(), sp, child.Kind(), cs)
			}
			if i > 0 {
				prev := children[i-1].ElementSpan()
				if prev.End.Offset > cs.Start.Offset {
					return fmt.Errorf("%s: sibling spans overlap: %s then %s",
						root.Kind(), prev, cs)
				}
			}
			if err := CheckSpanInvariants(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// childLists enumerates every sibling sequence a node owns, in the order the
// traversal framework visits them.
func childLists(el ast.Element) []ast.Elements {
	switch n := el.(type) {
	case *ast.Document:
		return []ast.Elements{n.Content}
	case *ast.Heading:
		return []ast.Elements{n.Caption, n.Content}
	case *ast.Paragraph:
		return []ast.Elements{n.Content}
	case *ast.List:
		return []ast.Elements{n.Content}
	case *ast.ListItem:
		return []ast.Elements{n.Content}
	case *ast.Template:
		return []ast.Elements{n.Name, n.Arguments}
	case *ast.TemplateArgument:
		return []ast.Elements{n.Value}
	case *ast.Formatted:
		return []ast.Elements{n.Content}
	case *ast.Link:
		return []ast.Elements{n.Target, n.Caption}
	}
	return nil
}
