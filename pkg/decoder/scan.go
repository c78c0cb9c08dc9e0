package decoder

import "fmt"

// Token scanning. These functions decide how many bytes of a line belong
// to the position token and its parts; they never interpret values. The
// line parser and the position decoder share them so slicing and decoding
// cannot drift apart.
//
// The format has no delimiters, so optional position parts sit directly
// against the undecoded content slice. Ambiguity is resolved in favor of
// the position grammar with three carve-outs for content starters:
// '"', '+' and '-' never open an ending descriptor, and '~' is never
// taken as an optional bare-letter column.

// scanColumn returns the byte length of a column token at s[i:] where a
// column is required. Zero length is the implicit column 1.
func scanColumn(s string, i int) int {
	if i >= len(s) {
		return 0
	}
	c := s[i]
	switch {
	case isDigit(c):
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		return j - i
	case c == '=':
		return 1
	case isBareColumn(c):
		return 1
	}
	return 0
}

// scanColumnOpt is scanColumn for contexts where the column is optional
// and content may follow: '~' is left to the content decoder.
func scanColumnOpt(s string, i int) int {
	if i < len(s) && s[i] == '~' {
		return 0
	}
	return scanColumn(s, i)
}

// scanEnding returns the byte length of an ending descriptor at s[i:]:
// a further punctuation increment, an explicit line+column, an
// equals-pattern, or a bare column letter. Zero length means no ending.
func scanEnding(s string, i int) int {
	if i >= len(s) {
		return 0
	}
	c := s[i]
	switch {
	case c == '"' || c == '+' || c == '-':
		// Content starters win over the punctuation reading.
		return 0
	case isPunctIncrement(c):
		return 1 + scanColumnOpt(s, i+1)
	case isDigit(c):
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		return (j - i) + scanColumnOpt(s, j)
	case c == '=':
		return 1 + scanColumnOpt(s, i+1)
	case isBareColumn(c) && c != '~':
		return 1
	}
	return 0
}

// positionTokenEnd returns the byte length of the position token at the
// start of s, consuming the minimum characters its shape needs.
func positionTokenEnd(s string) (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptyPositionToken
	}
	c := s[0]
	switch {
	case c == ':' || c == ';' || c == '@' || c == '|' || c == '_':
		return 1, nil
	case c == '^' || c == '<' || c == '>':
		return 1 + scanColumn(s, 1), nil
	case c == '[' || c == ']':
		i := 1 + scanColumn(s, 1)
		return i + scanColumn(s, i), nil
	case c == '=':
		return scanEqualsToken(s), nil
	case isPunctIncrement(c):
		return scanPunctToken(s), nil
	case isDigit(c):
		return scanAbsoluteToken(s), nil
	case isBareColumn(c):
		return 1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, c)
}

// scanEqualsToken measures the =-family shapes: "=", "==", "===",
// "===X", "=X" and "=X=Y".
func scanEqualsToken(s string) int {
	n := 0
	for n < len(s) && n < 3 && s[n] == '=' {
		n++
	}
	switch n {
	case 2:
		return 2
	case 3:
		return 3 + scanColumnOpt(s, 3)
	}
	// Single '=': optional column, optionally followed by '=' column.
	i := 1
	x := scanColumnOpt(s, i)
	i += x
	if x > 0 && i < len(s) && s[i] == '=' {
		i++
		i += scanColumn(s, i)
	}
	return i
}

// scanPunctToken measures a line increment with its optional start
// column and optional ending descriptor.
func scanPunctToken(s string) int {
	i := 1
	col := scanColumnOpt(s, i)
	i += col
	if col > 0 {
		i += scanEnding(s, i)
	}
	return i
}

// scanAbsoluteToken measures "line column [line column]" where the
// leading line is a decimal run.
func scanAbsoluteToken(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	col := scanColumnOpt(s, i)
	i += col
	if col > 0 && i < len(s) && isDigit(s[i]) {
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		i = j + scanColumnOpt(s, j)
	}
	return i
}
