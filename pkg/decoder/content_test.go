package decoder

import (
	"testing"

	"github.com/lexkit/lexkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		in   string
		want types.Content
	}{
		{"", types.EmptyContent()},
		{`"hello`, types.StringContent("hello")},
		{`"`, types.StringContent("")},
		{"+a", types.NumberContent(10)},
		{"-z", types.NumberContent(-35)},
		{"+16", types.NumberContent(42)},
		{"~t", types.BooleanContent(true)},
		{"~f", types.BooleanContent(false)},
		{"16", types.NumberContent(42)},
		{"0", types.NumberContent(0)},
		{"~x", types.StringContent("~x")},
		{"identifier", types.StringContent("identifier")},
	}

	for _, tt := range tests {
		got, err := DecodeContent(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestDecodeContent_InvalidRadix36(t *testing.T) {
	// A numeric content slice with a stray character is fatal, never
	// silently truncated.
	_, err := DecodeContent("1x!")
	assert.ErrorIs(t, err, types.ErrInvalidRadix36Character)

	_, err = DecodeContent("+1.5")
	assert.ErrorIs(t, err, types.ErrInvalidRadix36Character)
}
