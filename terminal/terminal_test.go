package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javanhut/RookTerm/emulator"
)

func TestNewTerminal(t *testing.T) {
	tm := New(80, 24)
	assert.NotEmpty(t, tm.ID)
	cols, rows := tm.Emulator.Size()
	assert.Equal(t, 80, cols)
	assert.Equal(t, 24, rows)
	assert.Equal(t, "Terminal", tm.Title())
	assert.False(t, tm.Active())
}

func TestUniqueIDs(t *testing.T) {
	a, b := New(80, 24), New(80, 24)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestProcessTracksTitle(t *testing.T) {
	tm := New(80, 24)
	events := tm.Process([]byte("\x1b]0;build output\x07"))
	require.Len(t, events, 2)
	assert.Equal(t, "build output", tm.Title())
}

func TestProcessTracksHyperlinks(t *testing.T) {
	tm := New(80, 24)
	tm.Process([]byte("\x1b]8;id=a;https://example.com\x07link text"))
	assert.True(t, tm.Hyperlinks.IsActive())
	assert.Equal(t, "https://example.com", tm.Hyperlinks.CurrentURL())

	tm.Process([]byte("\x1b]8;;\x07"))
	assert.False(t, tm.Hyperlinks.IsActive())

	url, ok := tm.Hyperlinks.URLByID("a")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", url)
}

func TestProcessReturnsEvents(t *testing.T) {
	tm := New(80, 24)
	events := tm.Process([]byte("\a\x1b[6n"))
	require.Len(t, events, 2)
	assert.Equal(t, emulator.BellEvent{}, events[0])
	assert.Equal(t, emulator.CursorPositionReportEvent{}, events[1])
}

func TestReset(t *testing.T) {
	tm := New(80, 24)
	tm.Process([]byte("\x1b]2;dirty\x07\x1b]8;id=a;https://x\x07stale"))
	tm.Reset()
	assert.Equal(t, "Terminal", tm.Title())
	assert.False(t, tm.Hyperlinks.IsActive())
	_, ok := tm.Hyperlinks.URLByID("a")
	assert.False(t, ok)
}

func TestResize(t *testing.T) {
	tm := New(80, 24)
	tm.Resize(120, 40)
	cols, rows := tm.Emulator.Size()
	assert.Equal(t, 120, cols)
	assert.Equal(t, 40, rows)
}

func TestDetectLinks(t *testing.T) {
	tm := New(80, 24)
	found := tm.DetectLinks("open https://example.com please", 2)
	require.Len(t, found, 1)
	assert.Equal(t, 2, found[0].Row)
}

func TestManagerCreateActivatesFirst(t *testing.T) {
	m := NewManager()
	first := m.Create(80, 24)
	second := m.Create(80, 24)

	assert.Equal(t, 2, m.Count())
	assert.True(t, first.Active())
	assert.False(t, second.Active())

	active, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, first.ID, active.ID)
}

func TestManagerGet(t *testing.T) {
	m := NewManager()
	created := m.Create(80, 24)

	got, ok := m.Get(created.ID)
	require.True(t, ok)
	assert.Same(t, created, got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestManagerSetActive(t *testing.T) {
	m := NewManager()
	first := m.Create(80, 24)
	second := m.Create(80, 24)

	require.True(t, m.SetActive(second.ID))
	assert.False(t, first.Active())
	assert.True(t, second.Active())

	assert.False(t, m.SetActive("missing"))
	assert.True(t, second.Active())
}

func TestManagerCloseMovesFocus(t *testing.T) {
	m := NewManager()
	first := m.Create(80, 24)
	second := m.Create(80, 24)

	require.True(t, m.Close(first.ID))
	assert.Equal(t, 1, m.Count())

	active, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, second.ID, active.ID)

	require.True(t, m.Close(second.ID))
	_, ok = m.Active()
	assert.False(t, ok)
	assert.False(t, m.Close(second.ID))
}

func TestManagerList(t *testing.T) {
	m := NewManager()
	a := m.Create(80, 24)
	b := m.Create(80, 24)

	ids := m.List()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, a.ID)
	assert.Contains(t, ids, b.ID)
	assert.LessOrEqual(t, ids[0], ids[1])
}
