package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Line
	}{
		{
			"type, id, width token, string content",
			`B1:"hello`,
			Line{Type: "B", NumberString: "1", PositionToken: ":", ContentRaw: `"hello`},
		},
		{
			"no type",
			"a;+16",
			Line{NumberString: "a", PositionToken: ";", ContentRaw: "+16"},
		},
		{
			"id run is maximal",
			"2va;+16",
			Line{NumberString: "2va", PositionToken: ";", ContentRaw: "+16"},
		},
		{
			"equals family with trailer",
			"K3=5=9~t",
			Line{Type: "K", NumberString: "3", PositionToken: "=5=9", ContentRaw: "~t"},
		},
		{
			"punctuation with column and ending",
			"A7!A!B-3",
			Line{Type: "A", NumberString: "7", PositionToken: "!A!B", ContentRaw: "-3"},
		},
		{
			"quote stops the optional ending descriptor",
			`C2!A"text`,
			Line{Type: "C", NumberString: "2", PositionToken: "!A", ContentRaw: `"text`},
		},
		{
			"tilde content after punctuation column",
			"D4!B~t",
			Line{Type: "D", NumberString: "4", PositionToken: "!B", ContentRaw: "~t"},
		},
		{
			"bracket pair consumes two columns",
			`E5[AE"x`,
			Line{Type: "E", NumberString: "5", PositionToken: "[AE", ContentRaw: `"x`},
		},
		{
			"no content",
			"F6@",
			Line{Type: "F", NumberString: "6", PositionToken: "@"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_MissingNumber(t *testing.T) {
	// A line starting directly with a position character has no id.
	_, err := ParseLine(`:"hello`)
	assert.ErrorIs(t, err, ErrMissingRadix36Number)

	_, err = ParseLine("")
	assert.ErrorIs(t, err, ErrMissingRadix36Number)

	// A type character alone is not an id either.
	_, err = ParseLine("B")
	assert.ErrorIs(t, err, ErrMissingRadix36Number)
}

func TestParseLine_TruncatedPosition(t *testing.T) {
	// The id run swallows the whole line, leaving no position token.
	_, err := ParseLine("5a")
	assert.ErrorIs(t, err, ErrMalformedLexemeLine)
	assert.ErrorIs(t, err, ErrEmptyPositionToken)
}

func TestParseLine_UnknownPositionLead(t *testing.T) {
	_, err := ParseLine("B1?")
	assert.ErrorIs(t, err, ErrMalformedLexemeLine)
	assert.ErrorIs(t, err, ErrUnknownPositionEncoding)
}
