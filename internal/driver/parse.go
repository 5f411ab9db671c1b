package driver

import (
	"fmt"
	"os"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/grammar"
	"wikitext/internal/observ"
	"wikitext/internal/source"
	"wikitext/internal/transform"
)

// Parse runs the whole pipeline over one document: index, grammar,
// normalization passes. A grammar failure comes back as *diag.ParseError and
// the passes never run; a failing pass comes back as
// *diag.TransformationError.
func Parse(input string) (ast.Element, error) {
	ix := source.NewIndex(input)
	doc, failure := grammar.Parse(input, ix)
	if failure != nil {
		return nil, diag.NewParseError(failure, ix)
	}
	return transform.Pipeline(doc, &transform.Settings{})
}

// ParseWithTimings is Parse with per-phase timings recorded into tm.
func ParseWithTimings(input string, tm *observ.Timer) (ast.Element, error) {
	idx := tm.Begin("index")
	ix := source.NewIndex(input)
	tm.End(idx, fmt.Sprintf("%d lines", ix.LineCount()))

	idx = tm.Begin("parse")
	doc, failure := grammar.Parse(input, ix)
	if failure != nil {
		tm.End(idx, "failed")
		return nil, diag.NewParseError(failure, ix)
	}
	tm.End(idx, "")

	idx = tm.Begin("transform")
	tree, err := transform.Pipeline(doc, &transform.Settings{})
	if err != nil {
		tm.End(idx, "failed")
		return nil, err
	}
	tm.End(idx, fmt.Sprintf("%d passes", len(transform.Passes())))
	return tree, nil
}

// Load reads a document from disk and canonicalizes it: BOM stripped, CRLF
// normalized to LF. Грамматика дальше видит только \n.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	data, _ = source.RemoveBOM(data)
	data, _ = source.NormalizeCRLF(data)
	return string(data), nil
}

// ParseFile is Load followed by Parse.
func ParseFile(path string) (ast.Element, error) {
	input, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Parse(input)
}
