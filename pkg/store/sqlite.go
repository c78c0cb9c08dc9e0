package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lexkit/lexkit/pkg/types"
)

// SQLiteStore implements Store using the pure-Go sqlite driver, so the
// default build needs no cgo.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store. Use ":memory:" for an
// in-memory database.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection: sqlite serializes writers anyway, and it keeps
	// ":memory:" databases from fragmenting across pool connections.
	db.SetMaxOpenConns(1)

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// AddStream registers a stream and returns its id.
func (s *SQLiteStore) AddStream(source string, header *types.FileHeader) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO streams (source, domain, filename, encoding)
		VALUES (?, ?, ?, ?)
	`, source, header.Domain, header.Filename, header.Encoding)
	if err != nil {
		return 0, fmt.Errorf("inserting stream: %w", err)
	}
	return res.LastInsertId()
}

// AddRecord appends one lexeme to a stream.
func (s *SQLiteStore) AddRecord(streamID int64, ordinal int, rec *types.LexemeRecord) error {
	var name, dataType *string
	if rec.Name != nil {
		name = &rec.Name.Name
		if rec.Name.DataType != "" {
			dataType = &rec.Name.DataType
		}
	}

	var text *string
	var number *int64
	var boolean *bool
	switch rec.Content.Kind {
	case types.ContentString:
		text = &rec.Content.Str
	case types.ContentNumber:
		number = &rec.Content.Num
	case types.ContentBoolean:
		boolean = &rec.Content.Bool
	}

	_, err := s.db.Exec(`
		INSERT INTO lexemes (
			stream_id, ordinal, type, number_string, number,
			start_line, start_column, length, end_line, end_column,
			content_kind, content_text, content_number, content_bool,
			name, data_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		streamID, ordinal, rec.Type, rec.NumberString, rec.Number,
		rec.Position.Line, rec.Position.Column, rec.Position.Length,
		rec.Position.EndLine, rec.Position.EndColumn,
		string(rec.Content.Kind), text, number, boolean,
		name, dataType,
	)
	if err != nil {
		return fmt.Errorf("inserting lexeme: %w", err)
	}
	return nil
}

// Streams lists stored streams in insertion order.
func (s *SQLiteStore) Streams() ([]*StreamInfo, error) {
	rows, err := s.db.Query(`
		SELECT s.id, s.source, s.domain, s.filename, s.encoding,
		       (SELECT COUNT(*) FROM lexemes l WHERE l.stream_id = s.id)
		FROM streams s
		ORDER BY s.id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying streams: %w", err)
	}
	defer rows.Close()

	var infos []*StreamInfo
	for rows.Next() {
		info := &StreamInfo{}
		err := rows.Scan(&info.ID, &info.Source,
			&info.Header.Domain, &info.Header.Filename, &info.Header.Encoding,
			&info.Lexemes)
		if err != nil {
			return nil, fmt.Errorf("scanning stream: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Records replays a stream's lexemes in ordinal order.
func (s *SQLiteStore) Records(streamID int64) ([]*types.LexemeRecord, error) {
	rows, err := s.db.Query(`
		SELECT type, number_string, number,
		       start_line, start_column, length, end_line, end_column,
		       content_kind, content_text, content_number, content_bool,
		       name, data_type
		FROM lexemes
		WHERE stream_id = ?
		ORDER BY ordinal
	`, streamID)
	if err != nil {
		return nil, fmt.Errorf("querying lexemes: %w", err)
	}
	defer rows.Close()

	var recs []*types.LexemeRecord
	for rows.Next() {
		rec := &types.LexemeRecord{}
		var kind string
		var text, name, dataType sql.NullString
		var number sql.NullInt64
		var boolean sql.NullBool
		err := rows.Scan(&rec.Type, &rec.NumberString, &rec.Number,
			&rec.Position.Line, &rec.Position.Column, &rec.Position.Length,
			&rec.Position.EndLine, &rec.Position.EndColumn,
			&kind, &text, &number, &boolean,
			&name, &dataType)
		if err != nil {
			return nil, fmt.Errorf("scanning lexeme: %w", err)
		}

		switch types.ContentKind(kind) {
		case types.ContentString:
			rec.Content = types.StringContent(text.String)
		case types.ContentNumber:
			rec.Content = types.NumberContent(number.Int64)
		case types.ContentBoolean:
			rec.Content = types.BooleanContent(boolean.Bool)
		default:
			rec.Content = types.EmptyContent()
		}
		if name.Valid {
			rec.Name = &types.NameDefinition{
				Name:     name.String,
				Number:   rec.Number,
				DataType: dataType.String,
			}
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
