package ast

import (
	"encoding/json"
	"fmt"
)

// Serialized trees tag every node with a "type" discriminator so that the
// closed union survives a round trip. Каждый вариант добавляет тег через
// локальный alias, чтобы не зациклить MarshalJSON.

func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindDocument, (*alias)(d)})
}

func (h *Heading) MarshalJSON() ([]byte, error) {
	type alias Heading
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindHeading, (*alias)(h)})
}

func (p *Paragraph) MarshalJSON() ([]byte, error) {
	type alias Paragraph
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindParagraph, (*alias)(p)})
}

func (l *List) MarshalJSON() ([]byte, error) {
	type alias List
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindList, (*alias)(l)})
}

func (li *ListItem) MarshalJSON() ([]byte, error) {
	type alias ListItem
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindListItem, (*alias)(li)})
}

func (t *Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindText, (*alias)(t)})
}

func (t *Template) MarshalJSON() ([]byte, error) {
	type alias Template
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindTemplate, (*alias)(t)})
}

func (a *TemplateArgument) MarshalJSON() ([]byte, error) {
	type alias TemplateArgument
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindTemplateArgument, (*alias)(a)})
}

func (f *Formatted) MarshalJSON() ([]byte, error) {
	type alias Formatted
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindFormatted, (*alias)(f)})
}

func (l *Link) MarshalJSON() ([]byte, error) {
	type alias Link
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindLink, (*alias)(l)})
}

func (c *Comment) MarshalJSON() ([]byte, error) {
	type alias Comment
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{KindComment, (*alias)(c)})
}

// MarshalJSON keeps empty sibling sequences as [] rather than null.
func (e Elements) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Element(e))
}

func (e *Elements) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(Elements, 0, len(raws))
	for _, raw := range raws {
		el, err := UnmarshalElement(raw)
		if err != nil {
			return err
		}
		out = append(out, el)
	}
	*e = out
	return nil
}

// UnmarshalElement decodes one serialized node, dispatching on its "type"
// discriminator. Nested sequences are decoded recursively.
func UnmarshalElement(data []byte) (Element, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("element header: %w", err)
	}
	el, err := newElement(head.Type)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, el); err != nil {
		return nil, fmt.Errorf("element %q: %w", head.Type, err)
	}
	return el, nil
}

func newElement(kind string) (Element, error) {
	switch kind {
	case KindDocument:
		return &Document{}, nil
	case KindHeading:
		return &Heading{}, nil
	case KindParagraph:
		return &Paragraph{}, nil
	case KindList:
		return &List{}, nil
	case KindListItem:
		return &ListItem{}, nil
	case KindText:
		return &Text{}, nil
	case KindTemplate:
		return &Template{}, nil
	case KindTemplateArgument:
		return &TemplateArgument{}, nil
	case KindFormatted:
		return &Formatted{}, nil
	case KindLink:
		return &Link{}, nil
	case KindComment:
		return &Comment{}, nil
	case "":
		return nil, fmt.Errorf("element object has no \"type\" discriminator")
	}
	return nil, fmt.Errorf("unknown element type %q", kind)
}

func (k ListKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *ListKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "unordered":
		*k = ListUnordered
	case "ordered":
		*k = ListOrdered
	case "definition":
		*k = ListDefinition
	default:
		return fmt.Errorf("unknown list kind %q", s)
	}
	return nil
}

func (m Markup) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *Markup) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "bold":
		*m = MarkupBold
	case "italic":
		*m = MarkupItalic
	default:
		return fmt.Errorf("unknown markup %q", s)
	}
	return nil
}
