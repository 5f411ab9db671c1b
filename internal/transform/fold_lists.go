package transform

import (
	"wikitext/internal/ast"
	"wikitext/internal/source"
)

// FoldLists groups maximal runs of flat sibling list items into List
// containers: one container per (depth, kind) group, deeper items nested
// inside the most recent shallower item.
var FoldLists = &Traverser{
	Name: "fold_lists",
	List: foldListsList,
}

// listFrame is one open List container during the fold.
type listFrame struct {
	list  *ast.List
	depth uint32
	kind  ast.ListKind
}

func foldListsList(els ast.Elements, s *Settings) (ast.Elements, error) {
	out := make(ast.Elements, 0, len(els))
	i := 0
	for i < len(els) {
		if _, ok := els[i].(*ast.ListItem); !ok {
			out = append(out, els[i])
			i++
			continue
		}
		j := i
		for j < len(els) {
			if _, ok := els[j].(*ast.ListItem); !ok {
				break
			}
			j++
		}
		folded, err := foldItemRun(els[i:j])
		if err != nil {
			return nil, err
		}
		out = append(out, folded...)
		i = j
	}
	return out, nil
}

// foldItemRun folds one maximal run of sibling list items. It is a stack
// fold keyed by (depth, kind): a new item closes every open container of
// greater depth, joins an equal-depth container of its own kind, splits an
// equal-depth container of another kind, and opens a nested container under
// the last open item when it is deeper.
func foldItemRun(items ast.Elements) (ast.Elements, error) {
	out := ast.Elements{}
	var stack []listFrame

	// pop seals the innermost container: its span covers its items and the
	// parent item (if any) widens over it.
	pop := func() {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		content := frame.list.Content
		frame.list.Span = source.Merge(content[0].ElementSpan(), content[len(content)-1].ElementSpan())
		if len(stack) == 0 {
			return
		}
		parent := stack[len(stack)-1].list
		parentItem := parent.Content[len(parent.Content)-1].(*ast.ListItem)
		parentItem.Span = parentItem.Span.Cover(frame.list.Span)
	}
	open := func(item *ast.ListItem) {
		list := &ast.List{Span: item.Span, Content: ast.Elements{item}}
		if len(stack) == 0 {
			out = append(out, list)
		} else {
			parent := stack[len(stack)-1].list
			parentItem := parent.Content[len(parent.Content)-1].(*ast.ListItem)
			parentItem.Content = append(parentItem.Content, list)
		}
		stack = append(stack, listFrame{list: list, depth: item.Depth, kind: item.ItemKind})
	}

	for _, el := range items {
		item := el.(*ast.ListItem)
		if item.Depth < 1 {
			return nil, transformError("fold_lists", item, "list item depth must be at least 1")
		}
		for len(stack) > 0 && stack[len(stack)-1].depth > item.Depth {
			pop()
		}
		if len(stack) > 0 && stack[len(stack)-1].depth == item.Depth {
			if stack[len(stack)-1].kind == item.ItemKind {
				stack[len(stack)-1].list.Content = append(stack[len(stack)-1].list.Content, item)
				continue
			}
			pop()
		}
		open(item)
	}
	for len(stack) > 0 {
		pop()
	}
	return out, nil
}
