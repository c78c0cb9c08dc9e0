// Package store persists decoded lexeme streams so they can be
// re-rendered later without re-decoding the inputs.
package store

import (
	"fmt"

	"github.com/lexkit/lexkit/pkg/types"
)

// StreamInfo describes one stored stream.
type StreamInfo struct {
	ID      int64
	Source  string
	Header  types.FileHeader
	Lexemes int
}

// Store provides persistence for decoded streams. The interface
// abstracts the backend; the only implementation is SQLite.
type Store interface {
	// AddStream registers a stream and returns its id.
	AddStream(source string, header *types.FileHeader) (int64, error)

	// AddRecord appends one lexeme to a stream. Ordinals are the
	// 0-based decode order and define replay order.
	AddRecord(streamID int64, ordinal int, rec *types.LexemeRecord) error

	// Streams lists stored streams in insertion order.
	Streams() ([]*StreamInfo, error)

	// Records replays a stream's lexemes in ordinal order.
	Records(streamID int64) ([]*types.LexemeRecord, error)

	// Close closes the database connection.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path. ":memory:" keeps the store
	// in-memory (useful for tests).
	Path string
}

// New creates a Store.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return NewSQLite(cfg.Path)
}
