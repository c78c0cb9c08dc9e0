// Package stream parses whole lexeme streams: the three-line header
// followed by one lexeme per line. One Parser run owns one position
// decoder, whose state threads across all lines of the stream.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lexkit/lexkit/pkg/decoder"
	"github.com/lexkit/lexkit/pkg/types"
)

// ErrMissingHeaderLine reports a stream that ends before the domain or
// filename header line.
var ErrMissingHeaderLine = errors.New("missing header line")

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ParseError wraps a decode failure with the 1-based ordinal of the
// offending line (header lines count) and its text.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NameLookup supplies optional id enrichment. A nil lookup, or a lookup
// that misses, leaves records unenriched; lookups never error.
type NameLookup interface {
	Lookup(number int64) *types.NameDefinition
}

// Handler receives a stream's parts as they are decoded. Header is
// called exactly once, before any Record call. Returning an error stops
// the parse; the error is propagated unwrapped.
type Handler interface {
	Header(h *types.FileHeader) error
	Record(rec *types.LexemeRecord) error
}

// Result is a fully buffered parse.
type Result struct {
	Header  *types.FileHeader
	Records []*types.LexemeRecord
}

// Option configures a Parser.
type Option func(*Parser)

// WithNames enriches records from a fixed lookup table.
func WithNames(lookup NameLookup) Option {
	return func(p *Parser) { p.names = lookup }
}

// WithNameResolver derives the lookup table from the stream's domain
// once the header is read. A nil return means no enrichment. Takes
// precedence over WithNames.
func WithNameResolver(resolve func(domain string) NameLookup) Option {
	return func(p *Parser) { p.resolver = resolve }
}

// Parser decodes one lexeme stream. A Parser is single-use and
// single-threaded: decoder state is strictly sequential. Decoding
// several streams concurrently takes one Parser each.
type Parser struct {
	names    NameLookup
	resolver func(domain string) NameLookup
}

// NewParser returns a stream parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes the whole stream into memory. For large inputs prefer
// ParseStream, which holds one record at a time.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	res := &Result{}
	err := p.ParseStream(r, &collector{res: res})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ParseStream decodes the stream, handing the header and then each
// record to h. Blank lines are skipped. The first malformed line aborts
// the parse with a ParseError; records already handed to h remain
// valid.
func (p *Parser) ParseStream(r io.Reader, h Handler) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	header, lineNo, err := readHeader(sc)
	if err != nil {
		return err
	}

	lookup := p.names
	if p.resolver != nil {
		lookup = p.resolver(header.Domain)
	}

	if err := h.Header(header); err != nil {
		return err
	}

	dec := decoder.NewPositionDecoder()
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := decodeLine(line, dec, lookup)
		if err != nil {
			return &ParseError{Line: lineNo, Text: line, Err: err}
		}
		if err := h.Record(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}
	return nil
}

// readHeader consumes the three header lines. Domain and filename are
// mandatory; a missing or blank encoding defaults to UTF-8.
func readHeader(sc *bufio.Scanner) (*types.FileHeader, int, error) {
	if !sc.Scan() {
		return nil, 0, fmt.Errorf("%w: domain", ErrMissingHeaderLine)
	}
	domain := strings.TrimRight(sc.Text(), "\r")

	if !sc.Scan() {
		return nil, 1, fmt.Errorf("%w: filename", ErrMissingHeaderLine)
	}
	filename := strings.TrimRight(sc.Text(), "\r")

	encoding := ""
	lineNo := 2
	if sc.Scan() {
		encoding = strings.TrimSpace(strings.TrimRight(sc.Text(), "\r"))
		lineNo = 3
	}
	if encoding == "" {
		encoding = types.DefaultEncoding
	}

	return &types.FileHeader{
		Domain:   domain,
		Filename: filename,
		Encoding: encoding,
	}, lineNo, nil
}

// decodeLine runs one line through the line parser, position decoder
// and content decoder, then assembles the record.
func decodeLine(line string, dec *decoder.PositionDecoder, lookup NameLookup) (*types.LexemeRecord, error) {
	ln, err := decoder.ParseLine(line)
	if err != nil {
		return nil, err
	}

	number, err := types.ParseRadix36(ln.NumberString)
	if err != nil {
		return nil, err
	}

	pos, err := dec.Decode(ln.PositionToken)
	if err != nil {
		return nil, err
	}

	content, err := decoder.DecodeContent(ln.ContentRaw)
	if err != nil {
		return nil, err
	}

	rec := &types.LexemeRecord{
		Type:         ln.Type,
		NumberString: ln.NumberString,
		Number:       number,
		Position:     pos,
		Content:      content,
	}
	if lookup != nil {
		rec.Name = lookup.Lookup(number)
	}
	return rec, nil
}

// collector buffers a stream into a Result.
type collector struct {
	res *Result
}

func (c *collector) Header(h *types.FileHeader) error {
	c.res.Header = h
	return nil
}

func (c *collector) Record(rec *types.LexemeRecord) error {
	c.res.Records = append(c.res.Records, rec)
	return nil
}
