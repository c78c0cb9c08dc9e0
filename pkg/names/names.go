// Package names loads lexeme name definition tables: side files mapping
// a domain's numeric lexeme ids to human-readable names and optional
// data types. Tables are read-only after load and lookups never fail;
// a missing entry is simply absent enrichment.
package names

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lexkit/lexkit/pkg/types"
)

// lineRE matches one definition: an optionally quoted name, '=', a
// colon-prefixed hex number, and an optional data type before the
// terminating semicolon. Examples:
//
//	large_unsigned_integer_number = :20b RATIONAL;
//	'WORKING-STORAGE' = :2c4;
var lineRE = regexp.MustCompile(`^(?:'([^']+)'|([^=\s]+))\s*=\s*:([0-9A-Fa-f]+)(?:\s+([^;]+))?\s*;?\s*$`)

// Table is an id-keyed set of name definitions for one domain.
type Table struct {
	domain string
	byNum  map[int64]*types.NameDefinition
}

// Domain returns the domain this table was loaded for ("" when parsed
// from a bare reader).
func (t *Table) Domain() string {
	return t.domain
}

// Lookup returns the definition for a lexeme number, or nil.
func (t *Table) Lookup(number int64) *types.NameDefinition {
	if t == nil {
		return nil
	}
	return t.byNum[number]
}

// Len returns the number of definitions.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byNum)
}

// All returns the definitions ordered by number.
func (t *Table) All() []*types.NameDefinition {
	if t == nil {
		return nil
	}
	defs := make([]*types.NameDefinition, 0, len(t.byNum))
	for _, d := range t.byNum {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Number < defs[j].Number })
	return defs
}

// Parse reads a definition table. Blank lines and lines starting with
// '#' or "//" are ignored; any other non-matching line is an error.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{byNum: make(map[int64]*types.NameDefinition)}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed name definition: %q", lineNo, line)
		}

		name := m[1]
		if name == "" {
			name = m[2]
		}
		number, err := strconv.ParseInt(m[3], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad hex number %q: %w", lineNo, m[3], err)
		}

		t.byNum[number] = &types.NameDefinition{
			Name:     name,
			Number:   number,
			DataType: strings.TrimSpace(m[4]),
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading name definitions: %w", err)
	}
	return t, nil
}

// ParseFile loads a definition table from a file path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening name definitions: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
