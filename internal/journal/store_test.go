package journal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(InMemory)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_InMemory(t *testing.T) {
	s := openTestStore(t)

	records, err := s.Dispatches(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records, "empty journal should return empty slice, not nil")
}

func TestOpen_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening an existing journal is safe.
	s, err = Open(path)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}

func TestWriteDispatch_ReadBackInOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Written out of order on purpose; reads must come back seq-ascending.
	require.NoError(t, s.WriteDispatch(ctx, Record{
		Seq: 2, Token: "tok-2", Interest: "/a/b", Outcome: "handler",
		MatchedPrefix: "/a", RegistrationID: 1,
	}))
	require.NoError(t, s.WriteDispatch(ctx, Record{
		Seq: 1, Token: "tok-1", Interest: "/ndn/ping", Outcome: "response",
	}))
	require.NoError(t, s.WriteDispatch(ctx, Record{
		Seq: 3, Token: "tok-3", Interest: "/z", Outcome: "none",
	}))

	records, err := s.Dispatches(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, int64(1), records[0].Seq)
	assert.Equal(t, "response", records[0].Outcome)
	assert.Equal(t, int64(2), records[1].Seq)
	assert.Equal(t, "/a", records[1].MatchedPrefix)
	assert.Equal(t, int64(1), records[1].RegistrationID)
	assert.Equal(t, int64(3), records[2].Seq)
	assert.Equal(t, "none", records[2].Outcome)
}

func TestWriteDispatch_DuplicateSeqIgnored(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := Record{Seq: 1, Token: "tok", Interest: "/a", Outcome: "none"}
	require.NoError(t, s.WriteDispatch(ctx, first))

	// Same seq again: silently ignored, first write wins.
	dup := Record{Seq: 1, Token: "other", Interest: "/b", Outcome: "response"}
	require.NoError(t, s.WriteDispatch(ctx, dup))

	records, err := s.Dispatches(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "/a", records[0].Interest)
}

func TestWriteDispatch_RejectsUnknownOutcome(t *testing.T) {
	s := openTestStore(t)

	err := s.WriteDispatch(context.Background(), Record{
		Seq: 1, Token: "tok", Interest: "/a", Outcome: "exploded",
	})
	assert.Error(t, err, "CHECK constraint should reject unknown outcomes")
}

func TestDispatchesForToken(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteDispatch(ctx, Record{Seq: 1, Token: "a", Interest: "/x", Outcome: "none"}))
	require.NoError(t, s.WriteDispatch(ctx, Record{Seq: 2, Token: "b", Interest: "/y", Outcome: "none"}))
	require.NoError(t, s.WriteDispatch(ctx, Record{Seq: 3, Token: "a", Interest: "/z", Outcome: "none"}))

	records, err := s.DispatchesForToken(ctx, "a")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "/x", records[0].Interest)
	assert.Equal(t, "/z", records[1].Interest)
}

func TestClose_Idempotent(t *testing.T) {
	s, err := Open(InMemory)
	require.NoError(t, err)

	assert.NoError(t, s.Close())
	// database/sql Close is safe to call twice.
	assert.NoError(t, s.Close())
}
