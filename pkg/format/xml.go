package format

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/lexkit/lexkit/pkg/types"
)

// xmlLexeme is the element emitted per record.
type xmlLexeme struct {
	XMLName   xml.Name `xml:"lexeme"`
	Type      string   `xml:"type,attr,omitempty"`
	ID        string   `xml:"id,attr"`
	Number    int64    `xml:"number,attr"`
	Name      string   `xml:"name,attr,omitempty"`
	DataType  string   `xml:"dataType,attr,omitempty"`
	Line      int      `xml:"line,attr"`
	Column    int      `xml:"column,attr"`
	EndLine   int      `xml:"endLine,attr"`
	EndColumn int      `xml:"endColumn,attr"`
	Kind      string   `xml:"kind,attr"`
	Content   string   `xml:",chardata"`
}

// XMLFormatter streams a <lexemes> document with one <lexeme> element
// per record.
type XMLFormatter struct {
	w   io.Writer
	enc *xml.Encoder
}

// NewXML returns the XML formatter.
func NewXML() *XMLFormatter {
	return &XMLFormatter{}
}

func (f *XMLFormatter) Begin(w io.Writer, header *types.FileHeader) error {
	f.w = w
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	// The root element is hand-built, so its attribute values need the
	// same escaping the encoder applies to record elements.
	_, err := fmt.Fprintf(w, "<lexemes domain=\"%s\" filename=\"%s\" encoding=\"%s\">\n",
		xmlAttr(header.Domain), xmlAttr(header.Filename), xmlAttr(header.Encoding))
	if err != nil {
		return err
	}
	f.enc = xml.NewEncoder(w)
	f.enc.Indent("  ", "  ")
	return nil
}

func (f *XMLFormatter) Record(rec *types.LexemeRecord) error {
	el := xmlLexeme{
		Type:      rec.Type,
		ID:        rec.NumberString,
		Number:    rec.Number,
		Line:      rec.Position.Line,
		Column:    rec.Position.Column,
		EndLine:   rec.Position.EffectiveEndLine(),
		EndColumn: rec.Position.EffectiveEndColumn(),
		Kind:      string(rec.Content.Kind),
	}
	if rec.Name != nil {
		el.Name = rec.Name.Name
		el.DataType = rec.Name.DataType
	}
	switch rec.Content.Kind {
	case types.ContentString:
		el.Content = rec.Content.Str
	case types.ContentNumber:
		el.Content = strconv.FormatInt(rec.Content.Num, 10)
	case types.ContentBoolean:
		el.Content = strconv.FormatBool(rec.Content.Bool)
	}
	return f.enc.Encode(el)
}

// xmlAttr escapes s for use inside a double-quoted attribute value.
func xmlAttr(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func (f *XMLFormatter) End() error {
	if err := f.enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(f.w, "\n</lexemes>\n")
	return err
}
