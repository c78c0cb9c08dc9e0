package decoder

import (
	"fmt"
	"strconv"

	"github.com/lexkit/lexkit/pkg/types"
)

// PositionDecoder reconstructs absolute source ranges from the stream's
// context-sensitive position tokens. It is stateful: every decode is
// resolved against the previously emitted position, so exactly one
// decoder must be used per stream and its calls are strictly sequential.
// Parsing two streams concurrently takes two decoders; there is no
// shared state between instances.
type PositionDecoder struct {
	last     types.Position
	lastLine int
	lastCol  int
	started  bool
}

// NewPositionDecoder returns a decoder positioned at line 1, column 1,
// with the first decode treated as a line change.
func NewPositionDecoder() *PositionDecoder {
	return &PositionDecoder{
		last:     types.Position{Line: 1, Column: 1},
		lastLine: 1,
		lastCol:  1,
	}
}

// lineJustChanged reports whether the current token is the first on its
// line: true for the very first decode, and whenever the tracked line
// moved away from the last emitted position's line.
func (d *PositionDecoder) lineJustChanged() bool {
	return !d.started || d.lastLine != d.last.Line
}

// Decode resolves one position token to an absolute position and
// advances the decoder state. The tracked column is left one past the
// decoded token (column plus width) so later "=" and increment columns
// resolve correctly.
func (d *PositionDecoder) Decode(token string) (types.Position, error) {
	if token == "" {
		return types.Position{}, ErrEmptyPositionToken
	}

	pos, err := d.decode(token)
	if err != nil {
		return types.Position{}, err
	}

	d.last = pos
	d.lastLine = pos.Line
	d.lastCol = pos.Column + pos.Length
	d.started = true
	return pos, nil
}

func (d *PositionDecoder) decode(token string) (types.Position, error) {
	c := token[0]
	switch {
	case c == ':':
		return d.widthAtLastEnd(token, 1)
	case c == ';':
		return d.widthAtLastEnd(token, 2)
	case c == '@':
		if len(token) != 1 {
			return types.Position{}, fmt.Errorf("%w: trailing %q", ErrUnknownPositionEncoding, token[1:])
		}
		return d.last, nil
	case c == '|':
		return d.offsetOnLine(token, 1)
	case c == '_':
		return d.offsetOnLine(token, 2)
	case c == '^':
		return d.extendToColumn(token[1:])
	case c == '<':
		return d.columnWithWidth(token[1:], 1)
	case c == '>':
		return d.columnWithWidth(token[1:], 2)
	case c == '[':
		return d.columnPair(token[1:], d.lastLine, d.lineJustChanged())
	case c == ']':
		return d.columnPair(token[1:], d.lastLine+1, true)
	case c == '=':
		return d.equalsFamily(token)
	case isPunctIncrement(c):
		return d.punctFamily(token)
	case isDigit(c):
		return d.absolute(token)
	case isBareColumn(c):
		if len(token) != 1 {
			return types.Position{}, fmt.Errorf("%w: trailing %q", ErrUnknownPositionEncoding, token[1:])
		}
		col, err := DecodeColumn(token, d.lineJustChanged(), d.lastCol)
		if err != nil {
			return types.Position{}, err
		}
		return types.Position{Line: d.lastLine, Column: col}, nil
	}
	return types.Position{}, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, c)
}

// widthAtLastEnd handles ':' and ';': a token of the given width
// starting where the previous one ended.
func (d *PositionDecoder) widthAtLastEnd(token string, width int) (types.Position, error) {
	if len(token) != 1 {
		return types.Position{}, fmt.Errorf("%w: trailing %q", ErrUnknownPositionEncoding, token[1:])
	}
	return types.Position{Line: d.lastLine, Column: d.lastCol, Length: width}, nil
}

// offsetOnLine handles '|' and '_': a point shifted past the previous
// token's effective end on the same line.
func (d *PositionDecoder) offsetOnLine(token string, offset int) (types.Position, error) {
	if len(token) != 1 {
		return types.Position{}, fmt.Errorf("%w: trailing %q", ErrUnknownPositionEncoding, token[1:])
	}
	return types.Position{
		Line:   d.last.Line,
		Column: d.last.EffectiveEndColumn() + offset,
	}, nil
}

// extendToColumn handles '^': same start as the previous end, range
// closing at the given column.
func (d *PositionDecoder) extendToColumn(rest string) (types.Position, error) {
	end, err := DecodeColumn(rest, false, d.lastCol)
	if err != nil {
		return types.Position{}, err
	}
	return types.Position{
		Line:      d.lastLine,
		Column:    d.last.EffectiveEndColumn(),
		EndLine:   d.lastLine,
		EndColumn: end,
	}, nil
}

// columnWithWidth handles '<' and '>': an explicit column on the
// current line with a fixed width.
func (d *PositionDecoder) columnWithWidth(rest string, width int) (types.Position, error) {
	col, err := DecodeColumn(rest, d.lineJustChanged(), d.lastCol)
	if err != nil {
		return types.Position{}, err
	}
	return types.Position{Line: d.lastLine, Column: col, Length: width}, nil
}

// columnPair handles '[' and ']': explicit start and end columns on the
// given line.
func (d *PositionDecoder) columnPair(rest string, line int, justChanged bool) (types.Position, error) {
	n := scanColumn(rest, 0)
	start, err := DecodeColumn(rest[:n], justChanged, d.lastCol)
	if err != nil {
		return types.Position{}, err
	}
	end, err := DecodeColumn(rest[n:], justChanged, start)
	if err != nil {
		return types.Position{}, err
	}
	return types.Position{Line: line, Column: start, EndLine: line, EndColumn: end}, nil
}

// equalsFamily resolves the same-line column shorthands "=", "==",
// "===", "===X", "=X" and "=X=Y". Any other shape is an error. After a
// line change the tracked column is the new line's start column, so the
// "same as last" reading stays well-defined without extra flags.
func (d *PositionDecoder) equalsFamily(token string) (types.Position, error) {
	n := 0
	for n < len(token) && n < 3 && token[n] == '=' {
		n++
	}
	rest := token[n:]

	switch n {
	case 2:
		if rest != "" {
			return types.Position{}, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, token)
		}
		return types.Position{Line: d.lastLine, Column: d.lastCol}, nil

	case 3:
		if rest == "" {
			return types.Position{Line: d.lastLine, Column: d.lastCol, Length: 1}, nil
		}
		end, err := DecodeColumn(rest, false, d.lastCol)
		if err != nil {
			return types.Position{}, err
		}
		return types.Position{
			Line:      d.lastLine,
			Column:    d.lastCol,
			EndLine:   d.lastLine,
			EndColumn: end,
		}, nil
	}

	// Single '='.
	if rest == "" {
		return types.Position{Line: d.lastLine, Column: d.lastCol}, nil
	}
	x := scanColumn(rest, 0)
	if x == 0 {
		return types.Position{}, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, token)
	}
	start, err := DecodeColumn(rest[:x], false, d.lastCol)
	if err != nil {
		return types.Position{}, err
	}
	if x == len(rest) {
		return types.Position{Line: d.lastLine, Column: start}, nil
	}
	if rest[x] != '=' {
		return types.Position{}, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, token)
	}
	end, err := DecodeColumn(rest[x+1:], false, start)
	if err != nil {
		return types.Position{}, err
	}
	return types.Position{
		Line:      d.lastLine,
		Column:    start,
		EndLine:   d.lastLine,
		EndColumn: end,
	}, nil
}

// lineIncrement decodes a punctuation line-increment character. The
// single authority on the 1-15 bound: every branch that turns a byte
// into an increment goes through here.
func lineIncrement(c byte) (int, error) {
	inc := int(c) - 0x20
	if inc < 1 || inc > 15 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPunctuationIncrement, c)
	}
	return inc, nil
}

// punctFamily resolves a line increment ('!' through '/'), an optional
// start column, and an optional ending descriptor.
func (d *PositionDecoder) punctFamily(token string) (types.Position, error) {
	inc, err := lineIncrement(token[0])
	if err != nil {
		return types.Position{}, err
	}
	line := d.lastLine + inc

	rest := token[1:]
	if rest == "" {
		return types.Position{Line: line, Column: 1}, nil
	}

	n := scanColumnOpt(rest, 0)
	if n == 0 {
		return types.Position{}, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, token)
	}
	start, err := DecodeColumn(rest[:n], true, d.lastCol)
	if err != nil {
		return types.Position{}, err
	}
	if n == len(rest) {
		return types.Position{Line: line, Column: start}, nil
	}

	endLine, endCol, err := d.decodeEnding(rest[n:], line, start)
	if err != nil {
		return types.Position{}, err
	}
	return types.Position{
		Line:      line,
		Column:    start,
		EndLine:   endLine,
		EndColumn: endCol,
	}, nil
}

// decodeEnding resolves the bounded ending descriptor of the
// punctuation family: another increment, an explicit line+column, an
// equals-pattern, or a bare same-line column.
func (d *PositionDecoder) decodeEnding(s string, baseLine, startCol int) (int, int, error) {
	c := s[0]
	switch {
	case isPunctIncrement(c):
		inc, err := lineIncrement(c)
		if err != nil {
			return 0, 0, err
		}
		col, err := DecodeColumn(s[1:], true, startCol)
		if err != nil {
			return 0, 0, err
		}
		return baseLine + inc, col, nil

	case isDigit(c):
		i := 0
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		line, err := strconv.Atoi(s[:i])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, s)
		}
		col, err := DecodeColumn(s[i:], line != baseLine, startCol)
		if err != nil {
			return 0, 0, err
		}
		return line, col, nil

	case c == '=':
		col, err := DecodeColumn(s[1:], false, startCol)
		if err != nil {
			return 0, 0, err
		}
		return baseLine, col, nil

	case isBareColumn(c):
		col, err := DecodeColumn(s, false, startCol)
		if err != nil {
			return 0, 0, err
		}
		return baseLine, col, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, s)
}

// absolute resolves the fully explicit "line column [line column]"
// shape.
func (d *PositionDecoder) absolute(token string) (types.Position, error) {
	i := 0
	for i < len(token) && isDigit(token[i]) {
		i++
	}
	line, err := strconv.Atoi(token[:i])
	if err != nil {
		return types.Position{}, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, token)
	}

	n := scanColumnOpt(token, i)
	col, err := DecodeColumn(token[i:i+n], line != d.last.Line || !d.started, d.lastCol)
	if err != nil {
		return types.Position{}, err
	}
	j := i + n
	if j == len(token) {
		return types.Position{Line: line, Column: col}, nil
	}

	k := j
	for k < len(token) && isDigit(token[k]) {
		k++
	}
	if k == j {
		return types.Position{}, fmt.Errorf("%w: trailing %q", ErrUnknownPositionEncoding, token[j:])
	}
	endLine, err := strconv.Atoi(token[j:k])
	if err != nil {
		return types.Position{}, fmt.Errorf("%w: %q", ErrUnknownPositionEncoding, token)
	}
	endCol, err := DecodeColumn(token[k:], endLine != line, col)
	if err != nil {
		return types.Position{}, err
	}
	return types.Position{
		Line:      line,
		Column:    col,
		EndLine:   endLine,
		EndColumn: endCol,
	}, nil
}
