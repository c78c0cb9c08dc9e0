package lexkit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStream = "C~~1.0\ntest.c\nUTF-8\nB1:\"hello\nBa;+16\n"

func TestDecodeString(t *testing.T) {
	dec := NewDecoder(WithoutNames())

	result, err := dec.DecodeString(sampleStream)
	require.NoError(t, err)

	assert.Equal(t, "C~~1.0", result.Header.Domain)
	assert.Equal(t, "test.c", result.Header.Filename)
	assert.Equal(t, "UTF-8", result.Header.Encoding)

	require.Len(t, result.Records, 2)

	first := result.Records[0]
	assert.Equal(t, "B", first.Type)
	assert.Equal(t, int64(1), first.Number)
	assert.Equal(t, 1, first.Position.Line)
	assert.Equal(t, 1, first.Position.Column)
	assert.Equal(t, ContentString, first.Content.Kind)
	assert.Equal(t, "hello", first.Content.Str)

	second := result.Records[1]
	assert.Equal(t, int64(10), second.Number)
	assert.Equal(t, ContentNumber, second.Content.Kind)
	assert.Equal(t, int64(42), second.Content.Num)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.lexemes")
	require.NoError(t, os.WriteFile(path, []byte(sampleStream), 0o644))

	dec := NewDecoder(WithoutNames())
	result, err := dec.DecodeFile(path)
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
}

func TestDecodeFile_ResolvesNamesNextToInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.lexemes")
	require.NoError(t, os.WriteFile(path, []byte(sampleStream), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "C~~1.0.txt"),
		[]byte("'identifier' = :1 STRING;\n"), 0o644))

	dec := NewDecoder()
	result, err := dec.DecodeFile(path)
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	require.NotNil(t, result.Records[0].Name)
	assert.Equal(t, "identifier", result.Records[0].Name.Name)
	assert.Equal(t, "STRING", result.Records[0].Name.DataType)
	assert.Nil(t, result.Records[1].Name)
}

func TestWithNamesDir(t *testing.T) {
	defs := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(defs, "C~~1.0.txt"),
		[]byte("'identifier' = :1;\n"), 0o644))

	dec := NewDecoder(WithNamesDir(defs))
	result, err := dec.DecodeString(sampleStream)
	require.NoError(t, err)

	require.NotNil(t, result.Records[0].Name)
	assert.Equal(t, "identifier", result.Records[0].Name.Name)
}

func TestWithNameTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.txt")
	require.NoError(t, os.WriteFile(path, []byte("'identifier' = :1;\n"), 0o644))

	table, err := LoadNameTable(path)
	require.NoError(t, err)

	dec := NewDecoder(WithNameTable(table))
	result, err := dec.DecodeString(sampleStream)
	require.NoError(t, err)
	require.NotNil(t, result.Records[0].Name)
	assert.Equal(t, "identifier", result.Records[0].Name.Name)
}

func TestWithoutNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.lexemes")
	require.NoError(t, os.WriteFile(path, []byte(sampleStream), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "C~~1.0.txt"),
		[]byte("'identifier' = :1;\n"), 0o644))

	dec := NewDecoder(WithoutNames())
	result, err := dec.DecodeFile(path)
	require.NoError(t, err)
	assert.Nil(t, result.Records[0].Name)
}

type countingHandler struct {
	header  *FileHeader
	records int
}

func (c *countingHandler) Header(h *FileHeader) error {
	c.header = h
	return nil
}

func (c *countingHandler) Record(rec *LexemeRecord) error {
	c.records++
	return nil
}

func TestDecodeStream(t *testing.T) {
	dec := NewDecoder(WithoutNames())

	h := &countingHandler{}
	err := dec.DecodeStream(strings.NewReader(sampleStream), h)
	require.NoError(t, err)

	require.NotNil(t, h.header)
	assert.Equal(t, "C~~1.0", h.header.Domain)
	assert.Equal(t, 2, h.records)
}

func TestDecodeString_MalformedLine(t *testing.T) {
	dec := NewDecoder(WithoutNames())

	_, err := dec.DecodeString("C~~1.0\ntest.c\nUTF-8\nB1?\n")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 4, perr.Line)
}

func TestDecodeFile_Missing(t *testing.T) {
	dec := NewDecoder()
	_, err := dec.DecodeFile(filepath.Join(t.TempDir(), "missing.lexemes"))
	assert.Error(t, err)
}
