package types

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRadix36Character reports a byte outside 0-9, a-z, A-Z in a
// radix-36 numeral. Parsing never silently truncates.
var ErrInvalidRadix36Character = errors.New("invalid radix-36 character")

// ErrRadix36Overflow reports a numeral whose value does not fit in an
// int64. Parsing never silently wraps.
var ErrRadix36Overflow = errors.New("radix-36 value overflows int64")

// ParseRadix36 parses a base-36 numeral: digits 0-9 are 0-9, letters a-z
// (case-insensitive) are 10-35. The empty string parses to 0.
func ParseRadix36(s string) (int64, error) {
	var acc int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d int64
		switch {
		case c >= '0' && c <= '9':
			d = int64(c - '0')
		case c >= 'a' && c <= 'z':
			d = int64(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			d = int64(c-'A') + 10
		default:
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidRadix36Character, c, i)
		}
		if acc > (math.MaxInt64-d)/36 {
			return 0, fmt.Errorf("%w: %q", ErrRadix36Overflow, s)
		}
		acc = acc*36 + d
	}
	return acc, nil
}

// FormatRadix36 renders n as a lowercase base-36 numeral.
// Negative values get a leading minus sign.
func FormatRadix36(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%36]
		n /= 36
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
