package ast

import "wikitext/internal/source"

// Text is a leaf holding a raw slice of the input.
type Text struct {
	Span  source.Span `json:"span" yaml:"span"`
	Value string      `json:"text" yaml:"text"`
}

func (t *Text) Kind() string             { return KindText }
func (t *Text) ElementSpan() source.Span { return t.Span }
func (t *Text) elementNode()             {}

// Template is a transclusion `{{name|...}}`. Name is a sequence because a
// template name may itself contain markup; Arguments holds TemplateArgument
// nodes in source order.
type Template struct {
	Span      source.Span `json:"span" yaml:"span"`
	Name      Elements    `json:"name" yaml:"name"`
	Arguments Elements    `json:"arguments" yaml:"arguments"`
}

func (t *Template) Kind() string             { return KindTemplate }
func (t *Template) ElementSpan() source.Span { return t.Span }
func (t *Template) elementNode()             {}

// TemplateArgument is one `|`-separated template argument. Name is empty for
// anonymous arguments until enumerate_anon_args assigns positional names.
type TemplateArgument struct {
	Span  source.Span `json:"span" yaml:"span"`
	Name  string      `json:"name,omitempty" yaml:"name,omitempty"`
	Value Elements    `json:"value" yaml:"value"`
}

func (a *TemplateArgument) Kind() string             { return KindTemplateArgument }
func (a *TemplateArgument) ElementSpan() source.Span { return a.Span }
func (a *TemplateArgument) elementNode()             {}

// Anonymous reports whether the argument still lacks a name.
func (a *TemplateArgument) Anonymous() bool { return a.Name == "" }

// Markup classifies inline emphasis.
type Markup uint8

const (
	// MarkupBold is `'''...'''`.
	MarkupBold Markup = iota
	// MarkupItalic is `''...''`.
	MarkupItalic
)

func (m Markup) String() string {
	switch m {
	case MarkupBold:
		return "bold"
	case MarkupItalic:
		return "italic"
	}
	return "unknown"
}

// Formatted wraps emphasized inline content. The pipeline never matches on
// it; the traversal only descends through.
type Formatted struct {
	Span    source.Span `json:"span" yaml:"span"`
	Markup  Markup      `json:"markup" yaml:"markup"`
	Content Elements    `json:"content" yaml:"content"`
}

func (f *Formatted) Kind() string             { return KindFormatted }
func (f *Formatted) ElementSpan() source.Span { return f.Span }
func (f *Formatted) elementNode()             {}

// Link is an internal reference `[[target|caption]]`. Caption is empty when
// the link has no `|` part.
type Link struct {
	Span    source.Span `json:"span" yaml:"span"`
	Target  Elements    `json:"target" yaml:"target"`
	Caption Elements    `json:"caption" yaml:"caption"`
}

func (l *Link) Kind() string             { return KindLink }
func (l *Link) ElementSpan() source.Span { return l.Span }
func (l *Link) elementNode()             {}

// Comment is `<!-- ... -->`; Value is the raw text between the delimiters.
type Comment struct {
	Span  source.Span `json:"span" yaml:"span"`
	Value string      `json:"text" yaml:"text"`
}

func (c *Comment) Kind() string             { return KindComment }
func (c *Comment) ElementSpan() source.Span { return c.Span }
func (c *Comment) elementNode()             {}
