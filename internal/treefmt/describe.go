// Package treefmt renders normalized trees for humans and machines: an
// indented dump, JSON, YAML and a box-drawing terminal tree.
package treefmt

import (
	"fmt"

	"wikitext/internal/ast"
)

// group is one labeled child sequence of an element. Elements with a single
// natural sequence use an empty label and their children attach directly.
type group struct {
	label string
	items ast.Elements
}

// describe returns the one-line label of an element and its child groups in
// display order.
func describe(el ast.Element) (string, []group) {
	switch el := el.(type) {
	case *ast.Document:
		return "document", []group{{items: el.Content}}
	case *ast.Heading:
		return fmt.Sprintf("heading level=%d", el.Level), []group{
			{label: "caption", items: el.Caption},
			{label: "content", items: el.Content},
		}
	case *ast.Paragraph:
		return "paragraph", []group{{items: el.Content}}
	case *ast.List:
		return "list", []group{{items: el.Content}}
	case *ast.ListItem:
		return fmt.Sprintf("list_item kind=%s depth=%d", el.ItemKind, el.Depth),
			[]group{{items: el.Content}}
	case *ast.Text:
		return fmt.Sprintf("text %q", el.Value), nil
	case *ast.Template:
		return "template", []group{
			{label: "name", items: el.Name},
			{label: "arguments", items: el.Arguments},
		}
	case *ast.TemplateArgument:
		label := "argument"
		if el.Name != "" {
			label = fmt.Sprintf("argument name=%q", el.Name)
		}
		return label, []group{{items: el.Value}}
	case *ast.Formatted:
		return fmt.Sprintf("formatted markup=%s", el.Markup),
			[]group{{items: el.Content}}
	case *ast.Link:
		groups := []group{{label: "target", items: el.Target}}
		if len(el.Caption) > 0 {
			groups = append(groups, group{label: "caption", items: el.Caption})
		}
		return "link", groups
	case *ast.Comment:
		return fmt.Sprintf("comment %q", el.Value), nil
	}
	return fmt.Sprintf("%T", el), nil
}

// nonEmptyGroups drops empty child sequences so renderers never print bare
// labels.
func nonEmptyGroups(groups []group) []group {
	out := groups[:0]
	for _, g := range groups {
		if len(g.items) > 0 {
			out = append(out, g)
		}
	}
	return out
}
