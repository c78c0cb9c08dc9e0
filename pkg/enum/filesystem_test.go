package enum

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func enumerate(t *testing.T, cfg Config) []string {
	t.Helper()
	var mu sync.Mutex
	var got []string
	e := NewFilesystemEnumerator(cfg)
	err := e.Enumerate(context.Background(), func(path string) error {
		mu.Lock()
		defer mu.Unlock()
		rel, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			return err
		}
		got = append(got, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(got)
	return got
}

func TestEnumerate_ExtensionFilter(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.lexemes"), 10)
	touch(t, filepath.Join(root, "sub", "b.lexemes"), 10)
	touch(t, filepath.Join(root, "c.txt"), 10)

	got := enumerate(t, Config{Root: root, Workers: 1})
	assert.Equal(t, []string{"a.lexemes", "sub/b.lexemes"}, got)
}

func TestEnumerate_HiddenAndSize(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "keep.lexemes"), 10)
	touch(t, filepath.Join(root, ".hidden.lexemes"), 10)
	touch(t, filepath.Join(root, ".dir", "d.lexemes"), 10)
	touch(t, filepath.Join(root, "big.lexemes"), 100)

	got := enumerate(t, Config{Root: root, MaxFileSize: 50, Workers: 1})
	assert.Equal(t, []string{"keep.lexemes"}, got)

	got = enumerate(t, Config{Root: root, IncludeHidden: true, Workers: 1})
	assert.Equal(t, []string{".dir/d.lexemes", ".hidden.lexemes", "big.lexemes", "keep.lexemes"}, got)
}

func TestEnumerate_Gitignore(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "keep.lexemes"), 10)
	touch(t, filepath.Join(root, "skip", "s.lexemes"), 10)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("skip/\n"), 0o644))

	got := enumerate(t, Config{Root: root, Workers: 1})
	assert.Equal(t, []string{"keep.lexemes"}, got)
}

func TestEnumerate_Parallel(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		touch(t, filepath.Join(root, name+".lexemes"), 10)
	}

	got := enumerate(t, Config{Root: root, Workers: 4})
	assert.Len(t, got, 5)
}
