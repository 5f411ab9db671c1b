package transform

import (
	"errors"
	"strings"
	"testing"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/source"
)

func TestFoldLists_NestsByDepth(t *testing.T) {
	// Строки: "* a" [0,3), "** b" [4,8), "* c" [9,12).
	doc := mustApply(t, FoldLists, mustParse(t, "* a\n** b\n* c"))

	if len(doc.Content) != 1 {
		t.Fatalf("root holds %d elements, want 1", len(doc.Content))
	}
	outer, ok := doc.Content[0].(*ast.List)
	if !ok {
		t.Fatalf("root[0] = %T, want list", doc.Content[0])
	}
	if len(outer.Content) != 2 {
		t.Fatalf("outer list holds %d items, want 2", len(outer.Content))
	}
	a := outer.Content[0].(*ast.ListItem)
	nested, ok := a.Content[len(a.Content)-1].(*ast.List)
	if !ok {
		t.Fatalf("a.Content ends with %T, want nested list", a.Content[len(a.Content)-1])
	}
	if len(nested.Content) != 1 {
		t.Fatalf("nested list holds %d items, want 1", len(nested.Content))
	}
	if b := nested.Content[0].(*ast.ListItem); b.Depth != 2 {
		t.Errorf("nested item depth = %d, want 2", b.Depth)
	}
	if c := outer.Content[1].(*ast.ListItem); c.Depth != 1 {
		t.Errorf("outer item depth = %d, want 1", c.Depth)
	}

	// Контейнеры и родительские пункты накрывают вложенное содержимое.
	if nested.Span.Start.Offset != 4 || nested.Span.End.Offset != 8 {
		t.Errorf("nested.Span = %s, want offsets [4,8)", nested.Span)
	}
	if a.Span.Start.Offset != 0 || a.Span.End.Offset != 8 {
		t.Errorf("a.Span = %s, want offsets [0,8)", a.Span)
	}
	if outer.Span.Start.Offset != 0 || outer.Span.End.Offset != 12 {
		t.Errorf("outer.Span = %s, want offsets [0,12)", outer.Span)
	}
}

func TestFoldLists_SplitsOnKindChange(t *testing.T) {
	doc := mustApply(t, FoldLists, mustParse(t, "* a\n# b"))

	if len(doc.Content) != 2 {
		t.Fatalf("root holds %d elements, want 2", len(doc.Content))
	}
	first := doc.Content[0].(*ast.List)
	second := doc.Content[1].(*ast.List)
	if got := first.Content[0].(*ast.ListItem).ItemKind; got != ast.ListUnordered {
		t.Errorf("first list kind = %v, want unordered", got)
	}
	if got := second.Content[0].(*ast.ListItem).ItemKind; got != ast.ListOrdered {
		t.Errorf("second list kind = %v, want ordered", got)
	}
}

// Маркеры ';' и ':' дают один вид definition и потому не рвут контейнер.
func TestFoldLists_DefinitionMarkersShareContainer(t *testing.T) {
	doc := mustApply(t, FoldLists, mustParse(t, "; term\n: meaning"))

	if len(doc.Content) != 1 {
		t.Fatalf("root holds %d elements, want 1", len(doc.Content))
	}
	list := doc.Content[0].(*ast.List)
	if len(list.Content) != 2 {
		t.Fatalf("list holds %d items, want 2", len(list.Content))
	}
	for i, el := range list.Content {
		if item := el.(*ast.ListItem); item.ItemKind != ast.ListDefinition {
			t.Errorf("item %d kind = %v, want definition", i, item.ItemKind)
		}
	}
}

func TestFoldLists_RunBrokenByParagraph(t *testing.T) {
	doc := mustApply(t, FoldLists, mustParse(t, "* a\nx\n* b"))

	if len(doc.Content) != 3 {
		t.Fatalf("root holds %d elements, want 3", len(doc.Content))
	}
	if _, ok := doc.Content[0].(*ast.List); !ok {
		t.Errorf("root[0] = %T, want list", doc.Content[0])
	}
	if _, ok := doc.Content[1].(*ast.Paragraph); !ok {
		t.Errorf("root[1] = %T, want paragraph", doc.Content[1])
	}
	if _, ok := doc.Content[2].(*ast.List); !ok {
		t.Errorf("root[2] = %T, want list", doc.Content[2])
	}
}

// Скачок глубины вкладывает контейнер прямо под последний пункт, без
// промежуточных уровней.
func TestFoldLists_DepthGap(t *testing.T) {
	doc := mustApply(t, FoldLists, mustParse(t, "* a\n*** b"))

	outer := doc.Content[0].(*ast.List)
	a := outer.Content[0].(*ast.ListItem)
	nested := a.Content[len(a.Content)-1].(*ast.List)
	if b := nested.Content[0].(*ast.ListItem); b.Depth != 3 {
		t.Errorf("nested item depth = %d, want 3", b.Depth)
	}
}

func TestFoldLists_DepthShrinkStartsSibling(t *testing.T) {
	doc := mustApply(t, FoldLists, mustParse(t, "*** a\n* b"))

	if len(doc.Content) != 2 {
		t.Fatalf("root holds %d elements, want 2", len(doc.Content))
	}
	deep := doc.Content[0].(*ast.List)
	if item := deep.Content[0].(*ast.ListItem); item.Depth != 3 {
		t.Errorf("first list item depth = %d, want 3", item.Depth)
	}
	shallow := doc.Content[1].(*ast.List)
	if item := shallow.Content[0].(*ast.ListItem); item.Depth != 1 {
		t.Errorf("second list item depth = %d, want 1", item.Depth)
	}
}

func TestFoldLists_ZeroDepthFails(t *testing.T) {
	ix := source.NewIndex("x")
	item := &ast.ListItem{
		Span:     ix.SpanBetween(0, 1),
		Depth:    0,
		ItemKind: ast.ListUnordered,
	}
	doc := &ast.Document{Span: ix.SpanBetween(0, 1), Content: ast.Elements{item}}

	_, err := FoldLists.Apply(doc, &Settings{})
	if err == nil {
		t.Fatal("zero-depth item folded without error")
	}
	var te *diag.TransformationError
	if !errors.As(err, &te) {
		t.Fatalf("err = %T, want *diag.TransformationError", err)
	}
	if te.Transformation != "fold_lists" {
		t.Errorf("Transformation = %q, want fold_lists", te.Transformation)
	}
	if te.Span != item.Span {
		t.Errorf("Span = %s, want %s", te.Span, item.Span)
	}
	if te.Tree != ast.Element(item) {
		t.Errorf("Tree = %#v, want the failing item", te.Tree)
	}
	if !strings.Contains(te.Error(), "fold_lists") {
		t.Errorf("Error() = %q, want the transformation name in it", te.Error())
	}
}
