package decoder

import "errors"

// Deterministic parse errors. All of them are tied to a specific input
// offset and none are retryable; the stream parser wraps them with the
// offending line's ordinal before they reach the caller.
var (
	// ErrEmptyPositionToken reports a lexeme line whose position token
	// slice is empty.
	ErrEmptyPositionToken = errors.New("empty position token")

	// ErrUnknownPositionEncoding reports a position token whose first
	// character matches no dispatch rule.
	ErrUnknownPositionEncoding = errors.New("unknown position encoding")

	// ErrInvalidColumnEncoding reports a column token that is neither
	// empty, "=", a decimal number, nor a single character in 0x41-0x7E.
	ErrInvalidColumnEncoding = errors.New("invalid column encoding")

	// ErrInvalidPunctuationIncrement reports a line-increment character
	// whose encoded increment falls outside 1-15.
	ErrInvalidPunctuationIncrement = errors.New("invalid punctuation line increment")

	// ErrMissingRadix36Number reports a lexeme line with no radix-36 id
	// after the optional type character.
	ErrMissingRadix36Number = errors.New("missing radix-36 lexeme number")

	// ErrMalformedLexemeLine reports a lexeme line that could not be
	// split into its fields.
	ErrMalformedLexemeLine = errors.New("malformed lexeme line")
)
