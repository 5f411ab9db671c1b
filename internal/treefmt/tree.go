package treefmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"wikitext/internal/ast"
)

// TreeOpts controls the terminal tree rendering.
type TreeOpts struct {
	// Color enables styling; off keeps the connectors but drops the paint.
	Color bool
}

// treeStyles are the pens for one render.
type treeStyles struct {
	kind lipgloss.Style
	span lipgloss.Style
	line lipgloss.Style
}

// Tree writes a box-drawing tree suitable for terminals: kinds highlighted,
// spans dimmed, field labels as intermediate nodes.
func Tree(w io.Writer, el ast.Element, opts TreeOpts) error {
	// Рендерер привязан к писателю: в пайп уходит чистый текст, насколько
	// его различает lipgloss.
	r := lipgloss.NewRenderer(w)
	st := treeStyles{
		kind: r.NewStyle(),
		span: r.NewStyle(),
		line: r.NewStyle(),
	}
	if opts.Color {
		st.kind = r.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
		st.span = r.NewStyle().Foreground(lipgloss.Color("8"))
		st.line = r.NewStyle().Foreground(lipgloss.Color("7"))
	}
	return treeElement(w, el, st, "", "")
}

func treeElement(w io.Writer, el ast.Element, st treeStyles, lead, follow string) error {
	label, groups := describe(el)
	row := fmt.Sprintf("%s%s %s", lead, st.kind.Render(label), st.span.Render(el.ElementSpan().String()))
	if _, err := fmt.Fprintln(w, row); err != nil {
		return err
	}

	groups = nonEmptyGroups(groups)
	if len(groups) == 1 && groups[0].label == "" {
		return treeElements(w, groups[0].items, st, follow)
	}
	for gi, g := range groups {
		branch, cont := connectors(gi == len(groups)-1)
		row := follow + st.line.Render(branch) + g.label
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
		if err := treeElements(w, g.items, st, follow+cont); err != nil {
			return err
		}
	}
	return nil
}

func treeElements(w io.Writer, els ast.Elements, st treeStyles, follow string) error {
	for i, el := range els {
		branch, cont := connectors(i == len(els)-1)
		if err := treeElement(w, el, st, follow+st.line.Render(branch), follow+cont); err != nil {
			return err
		}
	}
	return nil
}

// connectors returns the branch glyph for a node and the continuation prefix
// for its descendants.
func connectors(last bool) (branch, cont string) {
	if last {
		return "└─ ", "   "
	}
	return "├─ ", "│  "
}
