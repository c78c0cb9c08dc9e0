package decoder

import "fmt"

// Line is one lexeme line split into its raw fields. Splitting is a
// strict left-to-right scan with no lookback; nothing is decoded here.
type Line struct {
	// Type is the optional leading type character, "" when absent.
	Type string
	// NumberString is the raw radix-36 lexeme id.
	NumberString string
	// PositionToken is the undecoded position slice.
	PositionToken string
	// ContentRaw is the remainder of the line, undecoded.
	ContentRaw string
}

// ParseLine splits one input line into type, id, position token and raw
// content. The id is a maximal run of [0-9a-z]; the position token's
// extent follows the decoder's first-character dispatch, consuming the
// minimum bytes its shape needs.
func ParseLine(line string) (Line, error) {
	i := 0

	var typ string
	if len(line) > 0 && line[0] >= 'A' && line[0] <= 'O' {
		typ = line[:1]
		i = 1
	}

	j := i
	for j < len(line) && (isDigit(line[j]) || (line[j] >= 'a' && line[j] <= 'z')) {
		j++
	}
	if j == i {
		return Line{}, fmt.Errorf("%w at offset %d", ErrMissingRadix36Number, i)
	}

	n, err := positionTokenEnd(line[j:])
	if err != nil {
		return Line{}, fmt.Errorf("%w: offset %d: %w", ErrMalformedLexemeLine, j, err)
	}

	return Line{
		Type:          typ,
		NumberString:  line[i:j],
		PositionToken: line[j : j+n],
		ContentRaw:    line[j+n:],
	}, nil
}
