package transform

import "wikitext/internal/ast"

// passes is the normalization pipeline in its fixed order. Reordering is a
// semantic change: later passes rely on the shapes earlier ones produce.
var passes = []*Traverser{
	FoldHeadings,
	FoldLists,
	WhitespaceParagraphsToEmpty,
	CollapseParagraphs,
	CollapseConsecutiveText,
	EnumerateAnonArgs,
}

// Passes returns the pipeline passes in execution order.
func Passes() []*Traverser {
	out := make([]*Traverser, len(passes))
	copy(out, passes)
	return out
}

// Pipeline runs every normalization pass over root in order, handing the
// same settings to each. The first failing pass aborts the run and its
// error comes back unchanged.
func Pipeline(root ast.Element, s *Settings) (ast.Element, error) {
	for _, t := range passes {
		var err error
		root, err = t.Apply(root, s)
		if err != nil {
			return nil, err
		}
	}
	return root, nil
}
