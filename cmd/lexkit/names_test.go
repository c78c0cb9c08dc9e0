package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "C~~1.0.txt"), []byte(`
# core definitions
'identifier' = :1 STRING;
RATIONAL = :20b RATIONAL;
`), 0o644))
	namesDirs = []string{dir}
	defer func() { namesDirs = nil }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runNames(cmd, []string{"C~~1.0"})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "2 definitions")
	assert.Contains(t, output, ":1 identifier STRING")
	assert.Contains(t, output, ":20b RATIONAL RATIONAL")
}

func TestRunNamesMissingDomain(t *testing.T) {
	namesDirs = []string{t.TempDir()}
	defer func() { namesDirs = nil }()

	cmd := &cobra.Command{}
	err := runNames(cmd, []string{"no-such-domain"})
	assert.Error(t, err)
}
