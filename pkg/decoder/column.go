package decoder

import (
	"fmt"
	"strconv"
)

// Character classes of the position grammar. Every dispatch decision in
// this package is driven by one of these.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isBareColumn reports whether c encodes a column as a single printable
// character in 0x41-0x7E (A-Z, a-z and the punctuation between them).
func isBareColumn(c byte) bool {
	return c >= 0x41 && c <= 0x7E
}

// isPunctIncrement reports whether c is a line-increment character
// ('!' through '/', encoding increments 1 through 15).
func isPunctIncrement(c byte) bool {
	return c >= '!' && c <= '/'
}

// DecodeColumn decodes a single column token into an absolute column.
//
// The empty token means column 1. "=" means the previously tracked
// column. A decimal number is absolute. A single character in 0x41-0x7E
// encodes its 1-based rank in that range: an absolute column when the
// line just changed, otherwise an increment on lastColumn. This dual
// interpretation is the load-bearing rule of the whole format.
func DecodeColumn(token string, lineJustChanged bool, lastColumn int) (int, error) {
	if token == "" {
		return 1, nil
	}
	if token == "=" {
		return lastColumn, nil
	}
	if isDigit(token[0]) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumnEncoding, token)
		}
		return n, nil
	}
	if len(token) == 1 && isBareColumn(token[0]) {
		v := int(token[0]-0x41) + 1
		if lineJustChanged {
			return v, nil
		}
		return lastColumn + v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColumnEncoding, token)
}
