package transform

import (
	"strconv"

	"wikitext/internal/ast"
)

// EnumerateAnonArgs assigns positional names to anonymous template
// arguments: the n-th anonymous argument of a template becomes "n", counted
// in document order within that template. Named arguments never consume or
// shift the counter, explicitly numeric names included.
var EnumerateAnonArgs = &Traverser{
	Name: "enumerate_anon_args",
	Node: enumerateAnonArgsNode,
}

func enumerateAnonArgsNode(el ast.Element, s *Settings) (ast.Element, error) {
	tpl, ok := el.(*ast.Template)
	if !ok {
		return el, nil
	}
	counter := 0
	for _, arg := range tpl.Arguments {
		a, ok := arg.(*ast.TemplateArgument)
		if !ok {
			continue
		}
		if a.Anonymous() {
			counter++
			a.Name = strconv.Itoa(counter)
		}
	}
	return tpl, nil
}
