package types

import "fmt"

// Position is a decoded source range. Lines and columns are 1-based.
//
// A Position is either a point with an optional width (Length set,
// EndLine/EndColumn zero) or an explicit range (EndLine/EndColumn set,
// Length zero). Zero means "unset" for Length, EndLine and EndColumn.
// Positions are values; the decoder builds a fresh one per lexeme and
// never mutates an emitted one.
type Position struct {
	Line      int `json:"line"`
	Column    int `json:"column"`
	Length    int `json:"length,omitempty"`
	EndLine   int `json:"endLine,omitempty"`
	EndColumn int `json:"endColumn,omitempty"`
}

// IsRange reports whether the position carries an explicit end point.
func (p Position) IsRange() bool {
	return p.EndLine != 0 || p.EndColumn != 0
}

// EffectiveEndLine is EndLine when set, otherwise Line.
func (p Position) EffectiveEndLine() int {
	if p.EndLine != 0 {
		return p.EndLine
	}
	return p.Line
}

// String renders the range as "line:col" or "line:col-line:col".
func (p Position) String() string {
	el, ec := p.EffectiveEndLine(), p.EffectiveEndColumn()
	if el == p.Line && ec == p.Column {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", p.Line, p.Column, el, ec)
}

// EffectiveEndColumn is EndColumn when set, otherwise the last column
// covered by the width (Column+Length-1), otherwise Column itself.
func (p Position) EffectiveEndColumn() int {
	if p.EndColumn != 0 {
		return p.EndColumn
	}
	if p.Length > 0 {
		return p.Column + p.Length - 1
	}
	return p.Column
}
