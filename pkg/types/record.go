package types

// LexemeRecord is one decoded lexeme: one line of the input stream.
//
// Type is the optional leading type character ("" when absent).
// NumberString is the raw radix-36 id as it appeared on the line and
// Number is its decoded value; the two are set together at construction
// so they cannot disagree. Name is non-nil only when the stream's name
// definition table had an entry for Number.
type LexemeRecord struct {
	Type         string          `json:"type,omitempty"`
	NumberString string          `json:"id"`
	Number       int64           `json:"number"`
	Position     Position        `json:"position"`
	Content      Content         `json:"content"`
	Name         *NameDefinition `json:"name,omitempty"`
}
