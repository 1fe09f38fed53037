// Package emulator implements a VT100/xterm-compatible terminal emulator
// core: a byte-level escape sequence parser and dispatcher that maintains
// cursor, attribute and mode state while driving an external screen buffer.
//
// The emulator performs no I/O of its own. The host feeds raw PTY output
// into Process, drains host-visible side effects via TakeEvents, and writes
// the synchronous protocol replies (CursorPositionReport, DeviceAttributes,
// ColorQueryReport) back to the application itself. Malformed input is
// absorbed silently; nothing in the hot path returns an error.
package emulator

import (
	"fmt"

	"github.com/javanhut/RookTerm/grid"
)

// Screen is the mutation surface the emulator requires from a screen
// buffer. All coordinates are 0-indexed; implementations make no promises
// about internal storage.
type Screen interface {
	SetCell(row, col int, cell grid.Cell)
	ClearRow(row int)
	InsertCells(row, col, n int)
	DeleteCells(row, col, n int)
	InsertLine(row, bottom int)
	DeleteLine(row, bottom int)
	ScrollUp(top, bottom int)
	ScrollDown(top, bottom int)
	Resize(cols, rows int)
}

// ScreenFactory creates screen buffers, used for the initial screen and
// when entering the alternate screen
type ScreenFactory func(cols, rows int) Screen

// Terminal is the emulator state machine. It is a plain value-mutating
// type with no internal locking; a host sharing one instance across
// goroutines must synchronize externally.
type Terminal struct {
	state  ParserState
	screen Screen
	// primary screen parked here while the alternate screen is active
	savedScreen Screen
	newScreen   ScreenFactory

	cursor         Cursor
	savedCursor    *SavedCursor
	savedCursorAlt *SavedCursor
	style          grid.CellStyle
	modes          TerminalMode

	scrollTop    int
	scrollBottom int
	tabStops     []int

	csi           CsiCommand
	oscData       []byte
	oscNumber     int
	oscNumberDone bool

	utf8Buf       []byte
	utf8Remaining int

	events []TerminalEvent

	cols int
	rows int
}

// New creates an emulator backed by a grid.Grid screen buffer
func New(cols, rows int) *Terminal {
	return NewWithScreen(cols, rows, func(c, r int) Screen {
		return grid.New(c, r)
	})
}

// NewWithScreen creates an emulator with a custom screen buffer factory
func NewWithScreen(cols, rows int, factory ScreenFactory) *Terminal {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	t := &Terminal{
		state:     StateGround,
		screen:    factory(cols, rows),
		newScreen: factory,
		cursor:    defaultCursor(),
		style:     grid.DefaultStyle(),
		modes:     ModeAutoWrap | ModeShowCursor,
		scrollTop: 0,
		tabStops:  defaultTabStops(cols),
		utf8Buf:   make([]byte, 0, 4),
		cols:      cols,
		rows:      rows,
	}
	t.scrollBottom = rows - 1
	return t
}

func defaultTabStops(cols int) []int {
	stops := make([]int, 0, cols/8)
	for i := 8; i < cols; i += 8 {
		stops = append(stops, i)
	}
	return stops
}

// Process consumes a slice of raw output bytes. Parsing state is kept
// across calls, so a sequence split over several reads behaves exactly
// like a single contiguous write.
func (t *Terminal) Process(data []byte) {
	for _, b := range data {
		t.processByte(b)
	}
}

// Reset reinitializes all state for the current dimensions
func (t *Terminal) Reset() {
	*t = *NewWithScreen(t.cols, t.rows, t.newScreen)
}

// Resize updates the emulator dimensions. The active screen and any parked
// primary screen are resized, the cursor is clamped, tab stops are rebuilt
// and the scroll region is reset to the full screen. In-progress parse
// state (CSI parameters, UTF-8 buffer) is untouched.
func (t *Terminal) Resize(cols, rows int) {
	if cols < 1 || rows < 1 {
		return
	}
	t.cols = cols
	t.rows = rows
	t.screen.Resize(cols, rows)
	if t.savedScreen != nil {
		t.savedScreen.Resize(cols, rows)
	}
	t.scrollTop = 0
	t.scrollBottom = rows - 1
	if t.cursor.Col > cols-1 {
		t.cursor.Col = cols - 1
	}
	if t.cursor.Row > rows-1 {
		t.cursor.Row = rows - 1
	}
	t.tabStops = defaultTabStops(cols)
}

// TakeEvents drains and returns all pending events in FIFO order
func (t *Terminal) TakeEvents() []TerminalEvent {
	events := t.events
	t.events = nil
	return events
}

func (t *Terminal) emit(ev TerminalEvent) {
	t.events = append(t.events, ev)
}

// Screen returns the active screen buffer
func (t *Terminal) Screen() Screen {
	return t.screen
}

// Cursor returns a copy of the cursor state
func (t *Terminal) Cursor() Cursor {
	return t.cursor
}

// Style returns the rendition currently applied to printed cells
func (t *Terminal) Style() grid.CellStyle {
	return t.style
}

// Mode reports whether a terminal mode is active
func (t *Terminal) Mode(m TerminalMode) bool {
	return t.hasMode(m)
}

// Size returns the emulator dimensions
func (t *Terminal) Size() (cols, rows int) {
	return t.cols, t.rows
}

// ScrollRegion returns the active scroll region bounds, 0-indexed inclusive
func (t *Terminal) ScrollRegion() (top, bottom int) {
	return t.scrollTop, t.scrollBottom
}

// CursorPositionReport formats the DSR 6 reply the host must write back
// to the application
func (t *Terminal) CursorPositionReport() string {
	return fmt.Sprintf("\x1b[%d;%dR", t.cursor.Row+1, t.cursor.Col+1)
}

// DeviceAttributes returns the primary DA reply, identifying a VT220
func (t *Terminal) DeviceAttributes() string {
	return "\x1b[?62;c"
}

// ColorQueryReport formats the OSC 4 reply for a palette color query
func (t *Terminal) ColorQueryReport(index uint8) string {
	r, g, b := grid.PaletteColor(index)
	return fmt.Sprintf("\x1b]4;%d;rgb:%02x%02x/%02x%02x/%02x%02x\x07",
		index, r, r, g, g, b, b)
}
