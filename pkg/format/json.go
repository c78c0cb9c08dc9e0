package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lexkit/lexkit/pkg/types"
)

// JSONFormatter streams one JSON document per stream: the header fields
// followed by a "lexemes" array. Records are encoded as they arrive.
type JSONFormatter struct {
	w     io.Writer
	first bool
}

// NewJSON returns the JSON formatter.
func NewJSON() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Begin(w io.Writer, header *types.FileHeader) error {
	f.w = w
	f.first = true

	domain, err := json.Marshal(header.Domain)
	if err != nil {
		return err
	}
	filename, err := json.Marshal(header.Filename)
	if err != nil {
		return err
	}
	encoding, err := json.Marshal(header.Encoding)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "{\n  \"domain\": %s,\n  \"filename\": %s,\n  \"encoding\": %s,\n  \"lexemes\": [",
		domain, filename, encoding)
	return err
}

func (f *JSONFormatter) Record(rec *types.LexemeRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	sep := ","
	if f.first {
		sep = ""
		f.first = false
	}
	_, err = fmt.Fprintf(f.w, "%s\n    %s", sep, data)
	return err
}

func (f *JSONFormatter) End() error {
	if f.first {
		_, err := fmt.Fprint(f.w, "]\n}\n")
		return err
	}
	_, err := fmt.Fprint(f.w, "\n  ]\n}\n")
	return err
}
