package names

import (
	"os"
	"path/filepath"
)

// EnvDir is the environment variable naming an extra directory to
// search for definition files.
const EnvDir = "LEXKIT_NAMES_DIR"

// Resolver locates a domain's definition file `<domain>.txt`. Search
// order: the input file's directory, the current directory, $LEXKIT_NAMES_DIR,
// then the executable's directory. The first hit wins.
type Resolver struct {
	// InputDir is the directory of the lexeme stream being decoded
	// ("" to skip).
	InputDir string
	// ExtraDirs are searched after InputDir and before the environment
	// directory.
	ExtraDirs []string
}

// Resolve returns the path of the domain's definition file, or "" when
// no candidate directory has one.
func (r *Resolver) Resolve(domain string) string {
	if domain == "" {
		return ""
	}
	filename := domain + ".txt"

	var dirs []string
	if r.InputDir != "" {
		dirs = append(dirs, r.InputDir)
	}
	dirs = append(dirs, ".")
	dirs = append(dirs, r.ExtraDirs...)
	if env := os.Getenv(EnvDir); env != "" {
		dirs = append(dirs, env)
	}
	if exe, err := os.Executable(); err == nil {
		if dir := filepath.Dir(exe); dir != "" {
			dirs = append(dirs, dir)
		}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Load resolves and parses the domain's table. Absence or a parse
// failure is non-fatal: the result is nil and decoding proceeds
// without enrichment.
func (r *Resolver) Load(domain string) *Table {
	path := r.Resolve(domain)
	if path == "" {
		return nil
	}
	t, err := ParseFile(path)
	if err != nil {
		return nil
	}
	t.domain = domain
	return t
}
