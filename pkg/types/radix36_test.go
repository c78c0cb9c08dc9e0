package types

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRadix36(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1", 1},
		{"9", 9},
		{"a", 10},
		{"z", 35},
		{"A", 10},
		{"Z", 35},
		{"10", 36},
		{"16", 42},
		{"zz", 35*36 + 35},
		{"248", 2*36*36 + 4*36 + 8},
		{"", 0},
	}

	for _, tt := range tests {
		got, err := ParseRadix36(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseRadix36_InvalidCharacter(t *testing.T) {
	for _, in := range []string{"1.0", "-1", "+a", "a b", "café"} {
		_, err := ParseRadix36(in)
		assert.ErrorIs(t, err, ErrInvalidRadix36Character, "input %q", in)
	}
}

func TestParseRadix36_Overflow(t *testing.T) {
	// 12 z's is 36^12-1, comfortably inside int64.
	got, err := ParseRadix36(strings.Repeat("z", 12))
	require.NoError(t, err)
	assert.Equal(t, int64(4738381338321616895), got)

	// One more digit exceeds int64 and must error, not wrap.
	_, err = ParseRadix36(strings.Repeat("z", 13))
	assert.ErrorIs(t, err, ErrRadix36Overflow)

	// The largest representable value parses exactly.
	got, err = ParseRadix36(FormatRadix36(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	_, err = ParseRadix36("1y2p0ij32e8e8") // MaxInt64 + 1
	assert.ErrorIs(t, err, ErrRadix36Overflow)
}

func TestRadix36_RoundTrip(t *testing.T) {
	// Step through the full range below 36^6 rather than enumerating it.
	const limit = int64(36 * 36 * 36 * 36 * 36 * 36)
	for n := int64(0); n < limit; n = n*3 + 1 {
		got, err := ParseRadix36(FormatRadix36(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestFormatRadix36(t *testing.T) {
	assert.Equal(t, "0", FormatRadix36(0))
	assert.Equal(t, "z", FormatRadix36(35))
	assert.Equal(t, "10", FormatRadix36(36))
	assert.Equal(t, "-16", FormatRadix36(-42))
}
