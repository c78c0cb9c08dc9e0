package decoder

import "github.com/lexkit/lexkit/pkg/types"

// DecodeContent classifies a lexeme's raw trailing slice. String content
// is kept verbatim after the opening quote; there is no closing quote
// and no escape processing at this layer. Numbers are radix-36.
// Anything unrecognized falls back to a plain string rather than
// erroring.
func DecodeContent(raw string) (types.Content, error) {
	if raw == "" {
		return types.EmptyContent(), nil
	}

	switch raw[0] {
	case '"':
		return types.StringContent(raw[1:]), nil
	case '+':
		n, err := types.ParseRadix36(raw[1:])
		if err != nil {
			return types.Content{}, err
		}
		return types.NumberContent(n), nil
	case '-':
		n, err := types.ParseRadix36(raw[1:])
		if err != nil {
			return types.Content{}, err
		}
		return types.NumberContent(-n), nil
	}

	if raw == "~t" {
		return types.BooleanContent(true), nil
	}
	if raw == "~f" {
		return types.BooleanContent(false), nil
	}

	if isDigit(raw[0]) {
		n, err := types.ParseRadix36(raw)
		if err != nil {
			return types.Content{}, err
		}
		return types.NumberContent(n), nil
	}

	return types.StringContent(raw), nil
}
