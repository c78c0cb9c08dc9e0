package format

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/lexkit/lexkit/pkg/types"
)

// csvHeader is the fixed column set of the CSV output.
var csvHeader = []string{
	"type", "id", "number", "name", "data_type",
	"start_line", "start_column", "end_line", "end_column",
	"content_kind", "content",
}

// CSVFormatter renders one row per lexeme. The stream header has no
// place in a flat table and is omitted.
type CSVFormatter struct {
	w *csv.Writer
}

// NewCSV returns the CSV formatter.
func NewCSV() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Begin(w io.Writer, _ *types.FileHeader) error {
	f.w = csv.NewWriter(w)
	return f.w.Write(csvHeader)
}

func (f *CSVFormatter) Record(rec *types.LexemeRecord) error {
	name, dataType := "", ""
	if rec.Name != nil {
		name, dataType = rec.Name.Name, rec.Name.DataType
	}

	content := ""
	switch rec.Content.Kind {
	case types.ContentString:
		content = rec.Content.Str
	case types.ContentNumber:
		content = strconv.FormatInt(rec.Content.Num, 10)
	case types.ContentBoolean:
		content = strconv.FormatBool(rec.Content.Bool)
	}

	return f.w.Write([]string{
		rec.Type,
		rec.NumberString,
		strconv.FormatInt(rec.Number, 10),
		name,
		dataType,
		strconv.Itoa(rec.Position.Line),
		strconv.Itoa(rec.Position.Column),
		strconv.Itoa(rec.Position.EffectiveEndLine()),
		strconv.Itoa(rec.Position.EffectiveEndColumn()),
		string(rec.Content.Kind),
		content,
	})
}

func (f *CSVFormatter) End() error {
	f.w.Flush()
	return f.w.Error()
}
