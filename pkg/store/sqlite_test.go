package store

import (
	"path/filepath"
	"testing"

	"github.com/lexkit/lexkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	s, err := New(Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	header := &types.FileHeader{Domain: "C~~1.0", Filename: "test.c", Encoding: "UTF-8"}
	id, err := s.AddStream("test.lexemes", header)
	require.NoError(t, err)

	recs := []*types.LexemeRecord{
		{
			Type:         "B",
			NumberString: "1",
			Number:       1,
			Position:     types.Position{Line: 1, Column: 1, Length: 1},
			Content:      types.StringContent("hello"),
			Name:         &types.NameDefinition{Name: "identifier", Number: 1, DataType: "STRING"},
		},
		{
			NumberString: "a",
			Number:       10,
			Position:     types.Position{Line: 2, Column: 3, EndLine: 2, EndColumn: 7},
			Content:      types.NumberContent(42),
		},
		{
			NumberString: "2",
			Number:       2,
			Position:     types.Position{Line: 3, Column: 1},
			Content:      types.EmptyContent(),
		},
		{
			NumberString: "3",
			Number:       3,
			Position:     types.Position{Line: 3, Column: 2},
			Content:      types.BooleanContent(true),
		},
	}
	for i, rec := range recs {
		require.NoError(t, s.AddRecord(id, i, rec))
	}

	streams, err := s.Streams()
	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, id, streams[0].ID)
	assert.Equal(t, "test.lexemes", streams[0].Source)
	assert.Equal(t, *header, streams[0].Header)
	assert.Equal(t, 4, streams[0].Lexemes)

	got, err := s.Records(id)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, recs[0], got[0])
	assert.Equal(t, recs[1], got[1])
	assert.Equal(t, recs[2], got[2])
	assert.Equal(t, recs[3], got[3])
}

func TestStore_MultipleStreams(t *testing.T) {
	s := newTestStore(t)

	a, err := s.AddStream("a.lexemes", &types.FileHeader{Domain: "A", Filename: "a", Encoding: "UTF-8"})
	require.NoError(t, err)
	b, err := s.AddStream("b.lexemes", &types.FileHeader{Domain: "B", Filename: "b", Encoding: "UTF-8"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	rec := &types.LexemeRecord{NumberString: "1", Number: 1, Position: types.Position{Line: 1, Column: 1}, Content: types.EmptyContent()}
	require.NoError(t, s.AddRecord(b, 0, rec))

	streams, err := s.Streams()
	require.NoError(t, err)
	require.Len(t, streams, 2)
	assert.Equal(t, 0, streams[0].Lexemes)
	assert.Equal(t, 1, streams[1].Lexemes)

	got, err := s.Records(a)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexkit.db")

	s, err := New(Config{Path: path})
	require.NoError(t, err)
	id, err := s.AddStream("x.lexemes", &types.FileHeader{Domain: "D", Filename: "x", Encoding: "UTF-8"})
	require.NoError(t, err)
	rec := &types.LexemeRecord{NumberString: "z", Number: 35, Position: types.Position{Line: 1, Column: 1}, Content: types.EmptyContent()}
	require.NoError(t, s.AddRecord(id, 0, rec))
	require.NoError(t, s.Close())

	// Reopen and read back.
	s, err = New(Config{Path: path})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Records(id)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}

func TestStore_EmptyPathRejected(t *testing.T) {
	_, err := New(Config{Path: ""})
	assert.Error(t, err)
}
