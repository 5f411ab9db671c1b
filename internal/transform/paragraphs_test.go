package transform

import (
	"testing"

	"wikitext/internal/ast"
	"wikitext/internal/source"
)

func TestWhitespaceParagraphs_BlankLineBecomesEmpty(t *testing.T) {
	doc := mustApply(t, WhitespaceParagraphsToEmpty, mustParse(t, "   "))

	p := doc.Content[0].(*ast.Paragraph)
	if !p.Empty() {
		t.Fatalf("paragraph still holds %d elements", len(p.Content))
	}
	// Диапазон строки сохраняется, пустеет только содержимое.
	if p.Span.Start.Offset != 0 || p.Span.End.Offset != 3 {
		t.Errorf("p.Span = %s, want offsets [0,3)", p.Span)
	}
}

func TestWhitespaceParagraphs_TabsAndSpaces(t *testing.T) {
	doc := mustApply(t, WhitespaceParagraphsToEmpty, mustParse(t, "\t \t"))

	if p := doc.Content[0].(*ast.Paragraph); !p.Empty() {
		t.Errorf("paragraph still holds %d elements", len(p.Content))
	}
}

func TestWhitespaceParagraphs_ConcatenatesTextChildren(t *testing.T) {
	ix := source.NewIndex(" \t")
	p := &ast.Paragraph{
		Span: ix.SpanBetween(0, 2),
		Content: ast.Elements{
			&ast.Text{Span: ix.SpanBetween(0, 1), Value: " "},
			&ast.Text{Span: ix.SpanBetween(1, 2), Value: "\t"},
		},
	}
	doc := &ast.Document{Span: ix.SpanBetween(0, 2), Content: ast.Elements{p}}

	got := mustApply(t, WhitespaceParagraphsToEmpty, doc)
	if p := got.Content[0].(*ast.Paragraph); !p.Empty() {
		t.Errorf("paragraph still holds %d elements", len(p.Content))
	}
}

func TestWhitespaceParagraphs_MarkupIsNotBlank(t *testing.T) {
	for _, input := range []string{"<!--x-->", "a ", " {{t}}"} {
		doc := mustApply(t, WhitespaceParagraphsToEmpty, mustParse(t, input))
		if p := doc.Content[0].(*ast.Paragraph); p.Empty() {
			t.Errorf("%q: paragraph emptied, want untouched", input)
		}
	}
}

func TestCollapseParagraphs_SeparatorDropped(t *testing.T) {
	doc := mustParse(t, "x\n   \ny")
	doc = mustApply(t, WhitespaceParagraphsToEmpty, doc)
	doc = mustApply(t, CollapseParagraphs, doc)

	if len(doc.Content) != 2 {
		t.Fatalf("root holds %d elements, want 2", len(doc.Content))
	}
	for i, el := range doc.Content {
		if p := el.(*ast.Paragraph); p.Empty() {
			t.Errorf("root[%d] is empty, want text paragraphs only", i)
		}
	}
}

// Между не-абзацами пустая строка несёт видимый разрыв, поэтому из серии
// остаётся один пустой абзац.
func TestCollapseParagraphs_KeepsBreakBetweenHeadings(t *testing.T) {
	for _, input := range []string{"= A =\n\n= B =", "= A =\n\n\n= B ="} {
		doc := mustApply(t, CollapseParagraphs, mustParse(t, input))
		if len(doc.Content) != 3 {
			t.Fatalf("%q: root holds %d elements, want 3", input, len(doc.Content))
		}
		p, ok := doc.Content[1].(*ast.Paragraph)
		if !ok || !p.Empty() {
			t.Errorf("%q: root[1] = %#v, want one empty paragraph", input, doc.Content[1])
		}
	}
}

func TestCollapseParagraphs_DocumentEdges(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"\nx", 1},
		{"x\n", 1},
		{"\n", 1},
	}
	for _, tc := range cases {
		doc := mustApply(t, CollapseParagraphs, mustParse(t, tc.input))
		if len(doc.Content) != tc.want {
			t.Errorf("%q: root holds %d elements, want %d", tc.input, len(doc.Content), tc.want)
		}
	}
}
