package format

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/lexkit/lexkit/pkg/types"
)

// styles holds the color formatters of the text output.
type styles struct {
	heading  *color.Color
	position *color.Color
	name     *color.Color
	content  *color.Color
	dim      *color.Color
}

// newStyles creates the text color set. enabled=false respects
// --color=never and NO_COLOR.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading:  color.New(color.Bold),
		position: color.New(color.FgHiGreen),
		name:     color.New(color.Bold, color.FgHiBlue),
		content:  color.New(color.FgYellow),
		dim:      color.New(color.FgHiBlack),
	}
	if !enabled {
		s.heading.DisableColor()
		s.position.DisableColor()
		s.name.DisableColor()
		s.content.DisableColor()
		s.dim.DisableColor()
	}
	return s
}

// colorEnabled resolves the --color mode against NO_COLOR and whether
// stdout is a terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
}

// TextFormatter renders a human-readable listing, one lexeme per line.
type TextFormatter struct {
	w     io.Writer
	s     *styles
	count int
}

// NewText returns the text formatter with the given color mode.
func NewText(colorMode string) *TextFormatter {
	return &TextFormatter{s: newStyles(colorEnabled(colorMode))}
}

func (f *TextFormatter) Begin(w io.Writer, header *types.FileHeader) error {
	f.w = w
	f.count = 0
	_, err := fmt.Fprintf(w, "%s %s\n%s %s\n%s %s\n\n",
		f.s.heading.Sprint("Domain:"), header.Domain,
		f.s.heading.Sprint("File:"), header.Filename,
		f.s.heading.Sprint("Encoding:"), header.Encoding)
	return err
}

func (f *TextFormatter) Record(rec *types.LexemeRecord) error {
	f.count++

	typ := rec.Type
	if typ == "" {
		typ = "-"
	}
	label := rec.NumberString
	if rec.Name != nil {
		label = rec.Name.Name
		if rec.Name.DataType != "" {
			label += " " + f.s.dim.Sprint("("+rec.Name.DataType+")")
		}
	} else if rec.Number == 0 {
		// Lexeme number zero is the conventional comment lexeme.
		label = "comment"
	}

	_, err := fmt.Fprintf(f.w, "%-12s %s %s %s",
		f.s.position.Sprint(rec.Position.String()),
		f.s.dim.Sprint(typ),
		f.s.name.Sprint(label),
		f.s.dim.Sprintf("#%d", rec.Number))
	if err != nil {
		return err
	}
	if rec.Content.Kind != types.ContentEmpty {
		if _, err := fmt.Fprintf(f.w, " %s", f.s.content.Sprint(rec.Content.String())); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(f.w)
	return err
}

func (f *TextFormatter) End() error {
	_, err := fmt.Fprintf(f.w, "\n%d lexemes\n", f.count)
	return err
}
