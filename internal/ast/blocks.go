package ast

import "wikitext/internal/source"

// Document is the root of every tree. Its span covers the whole input.
type Document struct {
	Span    source.Span `json:"span" yaml:"span"`
	Content Elements    `json:"content" yaml:"content"`
}

func (d *Document) Kind() string             { return KindDocument }
func (d *Document) ElementSpan() source.Span { return d.Span }
func (d *Document) elementNode()             {}

// Heading is a section heading of level 1..6. The grammar emits headings as
// flat sibling markers with empty Content; after folding a heading owns every
// sibling up to the next heading of equal or lower level.
type Heading struct {
	Span    source.Span `json:"span" yaml:"span"`
	Level   uint8       `json:"level" yaml:"level"`
	Caption Elements    `json:"caption" yaml:"caption"`
	Content Elements    `json:"content" yaml:"content"`
}

func (h *Heading) Kind() string             { return KindHeading }
func (h *Heading) ElementSpan() source.Span { return h.Span }
func (h *Heading) elementNode()             {}

// Paragraph is a single line of running text at block level.
type Paragraph struct {
	Span    source.Span `json:"span" yaml:"span"`
	Content Elements    `json:"content" yaml:"content"`
}

func (p *Paragraph) Kind() string             { return KindParagraph }
func (p *Paragraph) ElementSpan() source.Span { return p.Span }
func (p *Paragraph) elementNode()             {}

// Empty reports whether the paragraph has no content. Pass three rewrites
// whitespace-only paragraphs to this form; pass four drops them.
func (p *Paragraph) Empty() bool { return len(p.Content) == 0 }

// ListKind classifies list items by their marker character.
type ListKind uint8

const (
	// ListUnordered marks `*` items.
	ListUnordered ListKind = iota
	// ListOrdered marks `#` items.
	ListOrdered
	// ListDefinition marks `;` and `:` items.
	ListDefinition
)

func (k ListKind) String() string {
	switch k {
	case ListUnordered:
		return "unordered"
	case ListOrdered:
		return "ordered"
	case ListDefinition:
		return "definition"
	}
	return "unknown"
}

// List groups consecutive items of one kind at one depth. Lists never come
// out of the grammar; fold_lists builds them.
type List struct {
	Span    source.Span `json:"span" yaml:"span"`
	Content Elements    `json:"content" yaml:"content"`
}

func (l *List) Kind() string             { return KindList }
func (l *List) ElementSpan() source.Span { return l.Span }
func (l *List) elementNode()             {}

// ListItem is one list entry. Depth counts marker characters and is always
// at least 1. The grammar emits items as flat siblings; fold_lists nests
// deeper items inside the content of the nearest shallower one.
type ListItem struct {
	Span     source.Span `json:"span" yaml:"span"`
	Depth    uint32      `json:"depth" yaml:"depth"`
	ItemKind ListKind    `json:"kind" yaml:"kind"`
	Content  Elements    `json:"content" yaml:"content"`
}

func (li *ListItem) Kind() string             { return KindListItem }
func (li *ListItem) ElementSpan() source.Span { return li.Span }
func (li *ListItem) elementNode()             {}
