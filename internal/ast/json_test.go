package ast

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"wikitext/internal/source"
)

func TestMarshalText_Shape(t *testing.T) {
	ix := source.NewIndex("hi")
	el := &Text{Span: span(ix, 0, 2), Value: "hi"}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"type":"text","span":{"start":{"offset":0,"line":1,"col":1},"end":{"offset":2,"line":1,"col":3}},"text":"hi"}`
	if string(data) != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", data, want)
	}
}

func TestMarshal_EmptySequencesStayArrays(t *testing.T) {
	data, err := json.Marshal(&Paragraph{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"content":[]`) {
		t.Errorf("nil content must serialize as [], got %s", data)
	}
}

func TestElementRoundTrip(t *testing.T) {
	const input = "{{box|a|k=v}}\n== T ==\n* item\n"
	ix := source.NewIndex(input)

	doc := &Document{
		Span: span(ix, 0, ix.Len()),
		Content: Elements{
			&Paragraph{
				Span: span(ix, 0, 13),
				Content: Elements{
					&Template{
						Span: span(ix, 0, 13),
						Name: Elements{&Text{Span: span(ix, 2, 5), Value: "box"}},
						Arguments: Elements{
							&TemplateArgument{
								Span:  span(ix, 5, 7),
								Value: Elements{&Text{Span: span(ix, 6, 7), Value: "a"}},
							},
							&TemplateArgument{
								Span:  span(ix, 7, 11),
								Name:  "k",
								Value: Elements{&Text{Span: span(ix, 10, 11), Value: "v"}},
							},
						},
					},
				},
			},
			&Heading{
				Span:    span(ix, 14, 21),
				Level:   2,
				Caption: Elements{&Text{Span: span(ix, 17, 18), Value: "T"}},
				Content: Elements{
					&List{
						Span: span(ix, 22, 28),
						Content: Elements{
							&ListItem{
								Span:     span(ix, 22, 28),
								Depth:    1,
								ItemKind: ListUnordered,
								Content:  Elements{&Text{Span: span(ix, 24, 28), Value: "item"}},
							},
						},
					},
				},
			},
			&Formatted{
				Span:    span(ix, 0, 2),
				Markup:  MarkupItalic,
				Content: Elements{},
			},
			&Link{
				Span:    span(ix, 0, 2),
				Target:  Elements{&Text{Span: span(ix, 0, 1), Value: "t"}},
				Caption: Elements{},
			},
			&Comment{Span: span(ix, 0, 2), Value: " note "},
		},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := UnmarshalElement(data)
	if err != nil {
		t.Fatalf("UnmarshalElement: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip mismatch:\ngot  %#v\nwant %#v", got, doc)
	}
}

func TestUnmarshalElement_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing discriminator", `{"text":"hi"}`},
		{"unknown discriminator", `{"type":"table"}`},
		{"bad kind value", `{"type":"listitem","kind":"fancy"}`},
		{"bad markup value", `{"type":"formatted","markup":"underline"}`},
		{"not an object", `42`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalElement([]byte(tt.data)); err == nil {
				t.Errorf("UnmarshalElement(%s) succeeded, want error", tt.data)
			}
		})
	}
}

func TestMarshalYAML_Shape(t *testing.T) {
	ix := source.NewIndex("hi")
	el := &Text{Span: span(ix, 0, 2), Value: "hi"}
	data, err := yaml.Marshal(el)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if m["type"] != "text" || m["text"] != "hi" {
		t.Errorf("unexpected yaml shape: %s", data)
	}
}

func TestEnumJSON(t *testing.T) {
	data, err := json.Marshal(ListDefinition)
	if err != nil || string(data) != `"definition"` {
		t.Fatalf("Marshal(ListDefinition) = %s, %v", data, err)
	}
	var k ListKind
	if err := json.Unmarshal([]byte(`"ordered"`), &k); err != nil || k != ListOrdered {
		t.Fatalf("Unmarshal ordered = %v, %v", k, err)
	}
	var m Markup
	if err := json.Unmarshal([]byte(`"bold"`), &m); err != nil || m != MarkupBold {
		t.Fatalf("Unmarshal bold = %v, %v", m, err)
	}
}
