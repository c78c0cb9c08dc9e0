// Package format renders decoded lexeme streams. Formatters are
// streaming: Begin once with the header, Record per lexeme, End to
// flush. They hold one record at a time so output size does not depend
// on input size.
package format

import (
	"fmt"
	"io"

	"github.com/lexkit/lexkit/pkg/types"
)

// Formatter renders one stream.
type Formatter interface {
	Begin(w io.Writer, header *types.FileHeader) error
	Record(rec *types.LexemeRecord) error
	End() error
}

// Names of the available formats.
const (
	Text = "text"
	JSON = "json"
	CSV  = "csv"
	XML  = "xml"
)

// New returns the named formatter. Color only affects the text format
// ("auto", "always" or "never").
func New(name, color string) (Formatter, error) {
	switch name {
	case Text, "":
		return NewText(color), nil
	case JSON:
		return NewJSON(), nil
	case CSV:
		return NewCSV(), nil
	case XML:
		return NewXML(), nil
	}
	return nil, fmt.Errorf("unknown output format: %s", name)
}
