package treefmt

import (
	"io"

	"gopkg.in/yaml.v3"

	"wikitext/internal/ast"
)

// YAML writes the tree as YAML, mirroring the JSON layout.
func YAML(w io.Writer, el ast.Element) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(el); err != nil {
		_ = encoder.Close()
		return err
	}
	return encoder.Close()
}
