// Package enum discovers lexeme stream files on the filesystem and
// feeds them to a per-file callback, optionally in parallel. Each
// callback invocation handles one whole stream, so callers can give
// every file its own decoder without any shared state.
package enum

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// DefaultExtension is the lexeme stream file suffix looked for when
// none is configured.
const DefaultExtension = ".lexemes"

// Config controls a filesystem enumeration.
type Config struct {
	// Root is the directory to walk.
	Root string
	// Extensions are the file suffixes to accept (DefaultExtension
	// when empty).
	Extensions []string
	// IncludeHidden also visits dot-files and dot-directories.
	IncludeHidden bool
	// FollowSymlinks visits symlinked files.
	FollowSymlinks bool
	// MaxFileSize skips larger files (no limit when 0).
	MaxFileSize int64
	// Workers bounds callback parallelism (NumCPU when 0). Use 1 when
	// the callback writes to a shared, ordered sink.
	Workers int
}

// FilesystemEnumerator walks a directory tree for lexeme streams.
type FilesystemEnumerator struct {
	config Config
}

// NewFilesystemEnumerator creates a filesystem enumerator.
func NewFilesystemEnumerator(config Config) *FilesystemEnumerator {
	if len(config.Extensions) == 0 {
		config.Extensions = []string{DefaultExtension}
	}
	return &FilesystemEnumerator{config: config}
}

// Enumerate walks the tree and invokes callback once per eligible file.
// Phase 1 collects paths sequentially; phase 2 runs the callbacks on a
// bounded worker pool. A .gitignore at the root is honored.
func (e *FilesystemEnumerator) Enumerate(ctx context.Context, callback func(path string) error) error {
	var ignore *gitignore.GitIgnore
	gitignorePath := filepath.Join(e.config.Root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		ignore, _ = gitignore.CompileIgnoreFile(gitignorePath)
	}

	var files []string
	err := filepath.Walk(e.config.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if !e.config.IncludeHidden && isHidden(info.Name()) && path != e.config.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 && !e.config.FollowSymlinks {
			return nil
		}
		if !e.config.IncludeHidden && isHidden(info.Name()) {
			return nil
		}
		if !e.hasExtension(info.Name()) {
			return nil
		}
		if e.config.MaxFileSize > 0 && info.Size() > e.config.MaxFileSize {
			return nil
		}

		if ignore != nil {
			relPath, err := filepath.Rel(e.config.Root, path)
			if err != nil {
				return err
			}
			if ignore.MatchesPath(relPath) {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return err
	}

	workers := e.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 {
		for _, f := range files {
			if err := callback(f); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	paths := make(chan string, workers*2)

	g.Go(func() error {
		defer close(paths)
		for _, f := range files {
			select {
			case paths <- f:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for f := range paths {
				if err := callback(f); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func (e *FilesystemEnumerator) hasExtension(name string) bool {
	for _, ext := range e.config.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
