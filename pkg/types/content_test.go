package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContent_Constructors(t *testing.T) {
	assert.Equal(t, ContentEmpty, EmptyContent().Kind)

	s := StringContent("hello")
	assert.Equal(t, ContentString, s.Kind)
	assert.Equal(t, "hello", s.Str)

	n := NumberContent(-42)
	assert.Equal(t, ContentNumber, n.Kind)
	assert.Equal(t, int64(-42), n.Num)

	b := BooleanContent(true)
	assert.Equal(t, ContentBoolean, b.Kind)
	assert.True(t, b.Bool)
}

func TestContent_String(t *testing.T) {
	assert.Equal(t, `"hi"`, StringContent("hi").String())
	assert.Equal(t, "42", NumberContent(42).String())
	assert.Equal(t, "false", BooleanContent(false).String())
	assert.Equal(t, "", EmptyContent().String())
}
