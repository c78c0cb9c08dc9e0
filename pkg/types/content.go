package types

import (
	"fmt"
	"strconv"
)

// ContentKind discriminates the Content union.
type ContentKind string

const (
	ContentEmpty   ContentKind = "empty"
	ContentString  ContentKind = "string"
	ContentNumber  ContentKind = "number"
	ContentBoolean ContentKind = "boolean"
)

// Content is a lexeme's decoded value: empty, a string, a signed integer,
// or a boolean. Immutable value type; only the field matching Kind is
// meaningful.
type Content struct {
	Kind ContentKind `json:"kind"`
	Str  string      `json:"string,omitempty"`
	Num  int64       `json:"number,omitempty"`
	Bool bool        `json:"boolean,omitempty"`
}

// EmptyContent is the value of a lexeme with no content slice.
func EmptyContent() Content {
	return Content{Kind: ContentEmpty}
}

// StringContent wraps s.
func StringContent(s string) Content {
	return Content{Kind: ContentString, Str: s}
}

// NumberContent wraps n.
func NumberContent(n int64) Content {
	return Content{Kind: ContentNumber, Num: n}
}

// BooleanContent wraps b.
func BooleanContent(b bool) Content {
	return Content{Kind: ContentBoolean, Bool: b}
}

// String renders the content the way the text formatter shows it.
func (c Content) String() string {
	switch c.Kind {
	case ContentString:
		return strconv.Quote(c.Str)
	case ContentNumber:
		return strconv.FormatInt(c.Num, 10)
	case ContentBoolean:
		return strconv.FormatBool(c.Bool)
	case ContentEmpty:
		return ""
	default:
		return fmt.Sprintf("<%s>", c.Kind)
	}
}
