package grammar

import (
	"fmt"
	"strings"
)

// Terminal names reported in Failure.Expected. Whitespace-only names are
// quoted by the diagnostic renderer, the rest appear verbatim.
const (
	TermPipe          = "|"
	TermTemplateClose = "}}"
	TermLinkClose     = "]]"
	TermCommentClose  = "-->"
	TermBoldClose     = "'''"
	TermItalicClose   = "''"
	TermHeadingClose  = "="
	TermLineEnd       = "\n"
	TermCaption       = "caption"
	TermTemplateName  = "template name"
)

// Failure describes the first position at which no rule could continue.
// Parsing is atomic: after a construct commits (`{{`, `[[`, `<!--`, `'''`,
// `''`, a heading `=` run) there is no recovery and no partial tree.
type Failure struct {
	// Offset is the byte position the parse stopped at.
	Offset uint32
	// Line is the 1-based line holding Offset.
	Line uint32
	// Expected lists terminal names in the order the rules tried them.
	Expected []string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("parse failed at line %d: expected one of: %s",
		f.Line, strings.Join(f.Expected, ", "))
}
