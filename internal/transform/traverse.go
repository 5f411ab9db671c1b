// Package transform normalizes the raw tree the grammar produces: it folds
// flat heading and list markers into proper nesting, erases whitespace
// padding and numbers anonymous template arguments. Passes run in a fixed
// order and the first failure aborts the run.
package transform

import (
	"fmt"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
)

// Settings is handed by pointer to every pass. It carries no recognized
// options yet and is reserved for per-pass toggles.
type Settings struct{}

// NodeFunc rewrites one element after its children have been processed.
// Returning a nil element drops the node and its whole subtree.
type NodeFunc func(el ast.Element, s *Settings) (ast.Element, error)

// ListFunc rewrites one sibling sequence after its members have been
// processed. Stack folds and run merges live here.
type ListFunc func(els ast.Elements, s *Settings) (ast.Elements, error)

// Traverser applies one pass to a tree: depth-first, children strictly left
// to right, bottom-up. For every node the engine first rebuilds each child
// sequence, then hands the rebuilt sequence to List, then hands the node
// itself to Node. Passes own the trees they receive and may rewrite them in
// place.
type Traverser struct {
	// Name identifies the pass in transformation errors and timings.
	Name string
	Node NodeFunc
	List ListFunc
}

// Apply rewrites root and returns the replacement tree. The result is nil
// without error only when Node dropped the root itself. The first error
// anywhere below aborts the traversal immediately.
func (t *Traverser) Apply(root ast.Element, s *Settings) (ast.Element, error) {
	return t.apply(root, s)
}

func (t *Traverser) apply(el ast.Element, s *Settings) (ast.Element, error) {
	var err error
	// дети раньше родителя: каждый вариант перечисляет свои списки сам,
	// новые варианты обязаны добавиться сюда
	switch n := el.(type) {
	case *ast.Document:
		if n.Content, err = t.applyList(n.Content, s); err != nil {
			return nil, err
		}
	case *ast.Heading:
		if n.Caption, err = t.applyList(n.Caption, s); err != nil {
			return nil, err
		}
		if n.Content, err = t.applyList(n.Content, s); err != nil {
			return nil, err
		}
	case *ast.Paragraph:
		if n.Content, err = t.applyList(n.Content, s); err != nil {
			return nil, err
		}
	case *ast.List:
		if n.Content, err = t.applyList(n.Content, s); err != nil {
			return nil, err
		}
	case *ast.ListItem:
		if n.Content, err = t.applyList(n.Content, s); err != nil {
			return nil, err
		}
	case *ast.Template:
		if n.Name, err = t.applyList(n.Name, s); err != nil {
			return nil, err
		}
		if n.Arguments, err = t.applyList(n.Arguments, s); err != nil {
			return nil, err
		}
	case *ast.TemplateArgument:
		if n.Value, err = t.applyList(n.Value, s); err != nil {
			return nil, err
		}
	case *ast.Formatted:
		if n.Content, err = t.applyList(n.Content, s); err != nil {
			return nil, err
		}
	case *ast.Link:
		if n.Target, err = t.applyList(n.Target, s); err != nil {
			return nil, err
		}
		if n.Caption, err = t.applyList(n.Caption, s); err != nil {
			return nil, err
		}
	case *ast.Text, *ast.Comment:
		// leaves
	}
	if t.Node == nil {
		return el, nil
	}
	return t.Node(el, s)
}

func (t *Traverser) applyList(els ast.Elements, s *Settings) (ast.Elements, error) {
	out := els[:0]
	for _, el := range els {
		rewritten, err := t.apply(el, s)
		if err != nil {
			return nil, err
		}
		if rewritten == nil {
			continue
		}
		out = append(out, rewritten)
	}
	if t.List == nil {
		return out, nil
	}
	return t.List(out, s)
}

// transformError builds the failure a pass reports for one subtree.
func transformError(name string, tree ast.Element, format string, args ...any) error {
	return &diag.TransformationError{
		Cause:          fmt.Sprintf(format, args...),
		Span:           tree.ElementSpan(),
		Transformation: name,
		Tree:           tree,
	}
}
