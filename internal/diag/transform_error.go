package diag

import (
	"encoding/json"
	"fmt"

	"wikitext/internal/ast"
	"wikitext/internal/source"
)

// TransformationError reports a normalization pass that could not rewrite a
// subtree. Span is serialized as "position" to keep the wire shape of parse
// and transformation errors symmetrical.
type TransformationError struct {
	Cause string      `json:"cause" yaml:"cause"`
	Span  source.Span `json:"position" yaml:"position"`
	// Transformation is the name of the failing pass.
	Transformation string `json:"transformation_name" yaml:"transformation_name"`
	// Tree is the subtree the pass was applied to.
	Tree ast.Element `json:"tree" yaml:"tree"`
}

func (e *TransformationError) Error() string {
	return fmt.Sprintf("transformation %q failed at element %s: %s",
		e.Transformation, e.Span, e.Cause)
}

func (e *TransformationError) UnmarshalJSON(data []byte) error {
	var raw struct {
		Cause          string          `json:"cause"`
		Span           source.Span     `json:"position"`
		Transformation string          `json:"transformation_name"`
		Tree           json.RawMessage `json:"tree"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tree, err := ast.UnmarshalElement(raw.Tree)
	if err != nil {
		return fmt.Errorf("transformation error tree: %w", err)
	}
	*e = TransformationError{
		Cause:          raw.Cause,
		Span:           raw.Span,
		Transformation: raw.Transformation,
		Tree:           tree,
	}
	return nil
}
