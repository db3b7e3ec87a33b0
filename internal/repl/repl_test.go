package repl

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chongchonghe/acap/internal/engine"
	"github.com/chongchonghe/acap/internal/history"
)

func TestRunPlain(t *testing.T) {
	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	in := strings.NewReader("1 km\nin m\nnope\nq\n")
	var out bytes.Buffer

	err = runPlain(engine.New(nil, engine.DefaultOptions()), store, in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Input[1]: 1 km")
	assert.Contains(t, got, "= 1000 m  (SI)")
	assert.Contains(t, got, "= 1000 m\n")
	assert.Contains(t, got, "name error")
}

func TestRunPlainRecallRunsDirectly(t *testing.T) {
	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	in := strings.NewReader("2 + 3\n!\n")
	var out bytes.Buffer

	err = runPlain(engine.New(nil, engine.DefaultOptions()), store, in, &out)
	require.NoError(t, err)

	// The recalled input evaluates again, producing a second result line.
	assert.Equal(t, 2, strings.Count(out.String(), "= 5  (SI)"))
}

func TestModelSubmitFlow(t *testing.T) {
	m := newModel(engine.New(nil, engine.DefaultOptions()), nil, true)

	m.input.SetValue("6 * 7")
	next, _ := m.submit()
	got := next.(model)

	assert.Equal(t, 2, got.counter)
	joined := strings.Join(got.lines, "\n")
	assert.Contains(t, joined, "Input[1]: 6 * 7")
	assert.Contains(t, joined, "= 42  (SI)")
	assert.Empty(t, got.input.Value())
}
