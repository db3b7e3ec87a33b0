package repl

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chongchonghe/acap/internal/engine"
	"github.com/chongchonghe/acap/internal/history"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewSession(engine.New(nil, engine.DefaultOptions()), store)
}

func TestQuitCommands(t *testing.T) {
	s := newTestSession(t)

	for _, cmd := range []string{"q", "quit", "exit", "  q  "} {
		assert.True(t, s.Process(cmd).Quit, cmd)
	}
}

func TestEmptyInput(t *testing.T) {
	s := newTestSession(t)
	assert.True(t, s.Process("   ").Empty)
}

func TestEvaluateAndPersist(t *testing.T) {
	s := newTestSession(t)

	out := s.Process("2 pc")
	require.Nil(t, out.Err)
	assert.Equal(t, "2*pc", out.Parsed)
	assert.True(t, strings.HasSuffix(out.SI, " m"), out.SI)

	n, err := s.store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSemicolonNormalization(t *testing.T) {
	s := newTestSession(t)

	out := s.Process("a = 3; a + 1")
	require.Nil(t, out.Err)
	assert.Equal(t, "4", out.SI)
}

func TestBareUnitReconversion(t *testing.T) {
	s := newTestSession(t)

	out := s.Process("1 pc")
	require.Nil(t, out.Err)

	out = s.Process("in km")
	require.Nil(t, out.Err)
	assert.True(t, strings.HasSuffix(out.Converted, " km"), out.Converted)

	// Mismatched target degrades to an error without losing the result.
	out = s.Process("in kg")
	require.NotNil(t, out.Err)
	assert.Equal(t, engine.KindUnitConversion, out.Err.Kind)

	out = s.Process("in m")
	require.Nil(t, out.Err)
}

func TestReconversionWithoutResult(t *testing.T) {
	s := newTestSession(t)
	out := s.Process("in km")
	assert.NotEmpty(t, out.Notice)
}

func TestRecall(t *testing.T) {
	s := newTestSession(t)

	out := s.Process("!")
	assert.Equal(t, "history is empty", out.Notice)

	require.Nil(t, s.Process("G").Err)
	require.Nil(t, s.Process("c").Err)

	assert.Equal(t, "c", s.Process("!").Recall)
	assert.Equal(t, "G", s.Process("!1").Recall)
	assert.NotEmpty(t, s.Process("!99").Notice)
	assert.NotEmpty(t, s.Process("!abc").Notice)
}

func TestRecallIsSessionRelative(t *testing.T) {
	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	// Entries from an earlier run already sit in the log.
	for _, input := range []string{"old one", "old two", "old three"} {
		_, err := store.Append(&history.Entry{Input: input})
		require.NoError(t, err)
	}

	s := NewSession(engine.New(nil, engine.DefaultOptions()), store)

	// A fresh session starts empty even though the log does not.
	assert.Equal(t, "history is empty", s.Process("!").Notice)
	assert.NotEmpty(t, s.Process("!1").Notice)

	require.Nil(t, s.Process("G").Err)
	require.Nil(t, s.Process("c").Err)

	// !N matches this run's Input[N] numbering, not the log row id.
	assert.Equal(t, "G", s.Process("!1").Recall)
	assert.Equal(t, "c", s.Process("!2").Recall)
	assert.Equal(t, "c", s.Process("!").Recall)
	assert.NotEmpty(t, s.Process("!3").Notice)
}

func TestHistoryCommand(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "history is empty", s.Process("history").Notice)

	require.Nil(t, s.Process("G").Err)
	require.Nil(t, s.Process("c").Err)

	out := s.Process("history")
	assert.Contains(t, out.Notice, "!1  G")
	assert.Contains(t, out.Notice, "!2  c")
}

func TestNamesCommand(t *testing.T) {
	s := newTestSession(t)

	out := s.Process("names")
	assert.Contains(t, out.Notice, "pc")
	assert.Contains(t, out.Notice, "M_sun")
}

func TestErrorsDoNotTouchLastResult(t *testing.T) {
	s := newTestSession(t)

	require.Nil(t, s.Process("1 km").Err)
	require.NotNil(t, s.Process("nope").Err)

	out := s.Process("in m")
	require.Nil(t, out.Err)
	assert.Equal(t, "1000 m", out.Converted)
}

func TestReset(t *testing.T) {
	s := newTestSession(t)

	require.Nil(t, s.Process("x = 7, x").Err)
	s.Reset()
	out := s.Process("x")
	require.NotNil(t, out.Err)
	assert.Equal(t, engine.KindName, out.Err.Kind)
}
