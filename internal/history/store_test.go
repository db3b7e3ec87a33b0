package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndGet(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Append(&Entry{
		Input:  "2 pc in km",
		Parsed: "2*pc",
		SI:     "6.171355163e+16 m",
		CGS:    "6.171355163e+18 cm",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	e, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "2 pc in km", e.Input)
	assert.Equal(t, "2*pc", e.Parsed)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(42)
	assert.Error(t, err)
}

func TestLastEmpty(t *testing.T) {
	s := newTestStore(t)

	e, err := s.Last()
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestRecentOrdering(t *testing.T) {
	s := newTestStore(t)

	for _, input := range []string{"1", "2", "3"} {
		_, err := s.Append(&Entry{Input: input})
		require.NoError(t, err)
	}

	last, err := s.Last()
	require.NoError(t, err)
	assert.Equal(t, "3", last.Input)

	recent, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "3", recent[0].Input)
	assert.Equal(t, "2", recent[1].Input)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestReopenKeepsEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	_, err = s.Append(&Entry{Input: "G"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := NewStore(path)
	require.NoError(t, err)
	defer s2.Close()

	n, err := s2.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
