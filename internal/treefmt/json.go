package treefmt

import (
	"encoding/json"
	"io"

	"wikitext/internal/ast"
)

// JSON writes the tree as indented JSON with the "type" discriminator on
// every element.
func JSON(w io.Writer, el ast.Element) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(el)
}
