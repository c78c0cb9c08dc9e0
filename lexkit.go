// Package lexkit decodes compact lexeme streams into structured
// records.
//
// A lexeme stream is the text output of a lexical analyzer: a
// three-line header (domain, source filename, encoding) followed by one
// lexeme per line. Each line carries a type letter, a radix-36 lexeme
// number, a stateful position encoding and optional content. The
// position encoding is differential, so lines must be decoded in order.
//
// # Basic Usage
//
// Decode a stream file into memory:
//
//	dec := lexkit.NewDecoder()
//
//	result, err := dec.DecodeFile("program.lexemes")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range result.Records {
//	    fmt.Printf("%s %s at %s\n", rec.Type, rec.NumberString, rec.Position)
//	}
//
// # Name Enrichment
//
// Lexeme numbers can be resolved to names through a domain definition
// file (<domain>.txt). By default DecodeFile looks next to the input,
// in the current directory, in $LEXKIT_NAMES_DIR and next to the
// executable. Point the decoder somewhere else with WithNamesDir, or
// supply a table directly:
//
//	table, err := lexkit.LoadNameTable("/opt/defs/C~~1.0.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dec := lexkit.NewDecoder(lexkit.WithNameTable(table))
//
// # Streaming
//
// Large inputs can be handled one record at a time:
//
//	err := dec.DecodeStream(r, handler)
//
// where handler implements lexkit.Handler.
package lexkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexkit/lexkit/pkg/names"
	"github.com/lexkit/lexkit/pkg/stream"
	"github.com/lexkit/lexkit/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/lexkit/lexkit" without subpackages.
type (
	// Position locates a lexeme in the original source text.
	Position = types.Position

	// Content is a lexeme's decoded content value.
	Content = types.Content

	// ContentKind discriminates the content union.
	ContentKind = types.ContentKind

	// FileHeader is the three-line stream header.
	FileHeader = types.FileHeader

	// LexemeRecord is one fully decoded lexeme.
	LexemeRecord = types.LexemeRecord

	// NameDefinition maps a lexeme number to a name.
	NameDefinition = types.NameDefinition

	// Result is a fully buffered decode.
	Result = stream.Result

	// Handler receives header and records during a streaming decode.
	Handler = stream.Handler

	// ParseError reports the input line a decode failed on.
	ParseError = stream.ParseError
)

// Re-export content kind constants.
const (
	ContentEmpty   = types.ContentEmpty
	ContentString  = types.ContentString
	ContentNumber  = types.ContentNumber
	ContentBoolean = types.ContentBoolean
)

// Decoder decodes lexeme streams. A Decoder is safe to reuse across
// streams; each decode runs with fresh position state.
type Decoder struct {
	config *decoderConfig
}

// decoderConfig holds decoder configuration.
type decoderConfig struct {
	table     *names.Table
	extraDirs []string
	noNames   bool
}

// Option configures a Decoder.
type Option func(*decoderConfig)

// WithNameTable enriches records from a fixed table instead of
// resolving one from the stream's domain.
func WithNameTable(t *names.Table) Option {
	return func(c *decoderConfig) {
		c.table = t
	}
}

// WithNamesDir adds a directory to search for domain definition files.
// May be given more than once; directories are searched in order, after
// the input's directory and the current directory.
func WithNamesDir(dir string) Option {
	return func(c *decoderConfig) {
		c.extraDirs = append(c.extraDirs, dir)
	}
}

// WithoutNames disables name enrichment entirely. Records keep a nil
// Name even when a definition file exists.
func WithoutNames() Option {
	return func(c *decoderConfig) {
		c.noNames = true
	}
}

// NewDecoder creates a Decoder.
//
// By default the decoder:
//   - Resolves a name definition file from each stream's domain
//   - Searches the input's directory, the current directory,
//     $LEXKIT_NAMES_DIR and the executable's directory
//
// Example:
//
//	// Default decoder
//	dec := lexkit.NewDecoder()
//
//	// With an extra definition directory
//	dec := lexkit.NewDecoder(lexkit.WithNamesDir("/opt/defs"))
//
//	// Without name enrichment
//	dec := lexkit.NewDecoder(lexkit.WithoutNames())
func NewDecoder(opts ...Option) *Decoder {
	config := &decoderConfig{}
	for _, opt := range opts {
		opt(config)
	}
	return &Decoder{config: config}
}

// DecodeFile reads and decodes a lexeme stream file. The file's
// directory is searched first for name definition files.
func (d *Decoder) DecodeFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stream: %w", err)
	}
	defer f.Close()

	return d.parser(filepath.Dir(path)).Parse(f)
}

// DecodeReader decodes a lexeme stream from r into memory.
func (d *Decoder) DecodeReader(r io.Reader) (*Result, error) {
	return d.parser("").Parse(r)
}

// DecodeString decodes a lexeme stream held in a string.
func (d *Decoder) DecodeString(s string) (*Result, error) {
	return d.DecodeReader(strings.NewReader(s))
}

// DecodeStream decodes from r, handing the header and then each record
// to h as they are produced. Use this for inputs too large to buffer.
func (d *Decoder) DecodeStream(r io.Reader, h Handler) error {
	return d.parser("").ParseStream(r, h)
}

// DecodeStreamFile is DecodeFile's streaming counterpart.
func (d *Decoder) DecodeStreamFile(path string, h Handler) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening stream: %w", err)
	}
	defer f.Close()

	return d.parser(filepath.Dir(path)).ParseStream(f, h)
}

// parser builds a single-use stream parser wired with this decoder's
// name lookup strategy. inputDir seeds the definition file search.
func (d *Decoder) parser(inputDir string) *stream.Parser {
	if d.config.noNames {
		return stream.NewParser()
	}
	if d.config.table != nil {
		return stream.NewParser(stream.WithNames(d.config.table))
	}

	resolver := &names.Resolver{
		InputDir:  inputDir,
		ExtraDirs: d.config.extraDirs,
	}
	return stream.NewParser(stream.WithNameResolver(func(domain string) stream.NameLookup {
		t := resolver.Load(domain)
		if t == nil {
			return nil
		}
		return t
	}))
}

// LoadNameTable parses a name definition file.
//
// Example:
//
//	table, err := lexkit.LoadNameTable("C~~1.0.txt")
//	if err != nil {
//	    return err
//	}
//	dec := lexkit.NewDecoder(lexkit.WithNameTable(table))
func LoadNameTable(path string) (*names.Table, error) {
	return names.ParseFile(path)
}
