package ast

// YAML output mirrors the JSON shape, discriminator included. Marshal only:
// trees are loaded back from JSON, never from YAML.

func (d *Document) MarshalYAML() (any, error) {
	type alias Document
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindDocument, alias(*d)}, nil
}

func (h *Heading) MarshalYAML() (any, error) {
	type alias Heading
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindHeading, alias(*h)}, nil
}

func (p *Paragraph) MarshalYAML() (any, error) {
	type alias Paragraph
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindParagraph, alias(*p)}, nil
}

func (l *List) MarshalYAML() (any, error) {
	type alias List
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindList, alias(*l)}, nil
}

func (li *ListItem) MarshalYAML() (any, error) {
	type alias ListItem
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindListItem, alias(*li)}, nil
}

func (t *Text) MarshalYAML() (any, error) {
	type alias Text
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindText, alias(*t)}, nil
}

func (t *Template) MarshalYAML() (any, error) {
	type alias Template
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindTemplate, alias(*t)}, nil
}

func (a *TemplateArgument) MarshalYAML() (any, error) {
	type alias TemplateArgument
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindTemplateArgument, alias(*a)}, nil
}

func (f *Formatted) MarshalYAML() (any, error) {
	type alias Formatted
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindFormatted, alias(*f)}, nil
}

func (l *Link) MarshalYAML() (any, error) {
	type alias Link
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindLink, alias(*l)}, nil
}

func (c *Comment) MarshalYAML() (any, error) {
	type alias Comment
	return struct {
		Type  string `yaml:"type"`
		alias `yaml:",inline"`
	}{KindComment, alias(*c)}, nil
}

func (k ListKind) MarshalYAML() (any, error) { return k.String(), nil }

func (m Markup) MarshalYAML() (any, error) { return m.String(), nil }
