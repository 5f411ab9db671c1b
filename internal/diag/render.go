package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// RenderOpts controls terminal rendering of diagnostics.
type RenderOpts struct {
	// Color enables ANSI styling regardless of the writer.
	Color bool
	// MaxWidth caps the display width of context lines, in cells; 0 means 80.
	// The failing line itself is never truncated.
	MaxWidth int
}

const defaultMaxWidth = 80

func (o RenderOpts) maxWidth() int {
	if o.MaxWidth > 0 {
		return o.MaxWidth
	}
	return defaultMaxWidth
}

// Render writes err with source context when it is one of the two diagnostic
// shapes, and falls back to the plain message otherwise.
func Render(w io.Writer, err error, opts RenderOpts) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Render(w, opts)
	}
	var te *TransformationError
	if errors.As(err, &te) {
		return te.Render(w, opts)
	}
	_, werr := fmt.Fprintln(w, err)
	return werr
}

// Render writes the failure summary, the expected terminals and the context
// window. Gutter numbers are right-aligned, 1-based; the failing line is
// highlighted and shown in full.
func (e *ParseError) Render(w io.Writer, opts RenderOpts) error {
	redBold, blueBold, red := styles(opts.Color)

	header := fmt.Sprintf("ERROR in line %d at column %d: Could not continue to parse, expected one of: ",
		e.Position.Line, e.Position.Col)
	if _, err := fmt.Fprint(w, redBold.Sprint(header)); err != nil {
		return err
	}
	tokens := strings.Join(quoteExpected(e.Expected), ", ")
	if _, err := fmt.Fprintln(w, blueBold.Sprint(tokens)); err != nil {
		return err
	}

	gutterWidth := len(fmt.Sprintf("%d", e.ContextEnd+1))
	for i, content := range e.Context {
		lineno := e.ContextStart + uint32(i) + 1
		gutter := fmt.Sprintf("%*d |", gutterWidth, lineno)
		var row string
		if lineno == e.Position.Line {
			row = fmt.Sprintf("%s %s", redBold.Sprint(gutter), red.Sprint(content))
		} else {
			row = fmt.Sprintf("%s %s", blueBold.Sprint(gutter), shortenLine(content, opts.maxWidth()))
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the one-line failure summary.
func (e *TransformationError) Render(w io.Writer, opts RenderOpts) error {
	redBold, _, _ := styles(opts.Color)
	message := fmt.Sprintf("ERROR applying transformation %q to element at %d:%d to %d:%d: %s",
		e.Transformation, e.Span.Start.Line, e.Span.Start.Col,
		e.Span.End.Line, e.Span.End.Col, e.Cause)
	_, err := fmt.Fprintln(w, redBold.Sprint(message))
	return err
}

// styles builds the three pens used by the renderers. color.Color решает
// по глобальному состоянию терминала, поэтому включение принудительное.
func styles(enabled bool) (redBold, blueBold, red *color.Color) {
	redBold = color.New(color.FgRed, color.Bold)
	blueBold = color.New(color.FgBlue, color.Bold)
	red = color.New(color.FgRed)
	for _, c := range []*color.Color{redBold, blueBold, red} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return redBold, blueBold, red
}

// shortenLine truncates to the given display width, appending "..." when the
// line was cut.
func shortenLine(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
