package emulator

import (
	"github.com/javanhut/RookTerm/grid"
)

// CursorShape identifies the rendered cursor shape
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorBar
)

// Cursor holds the text cursor state. Col and Row are 0-indexed.
type Cursor struct {
	Col      int
	Row      int
	Visible  bool
	Blinking bool
	Shape    CursorShape
}

func defaultCursor() Cursor {
	return Cursor{
		Visible:  true,
		Blinking: true,
		Shape:    CursorBlock,
	}
}

// SavedCursor is the snapshot stored by DECSC / CSI s. The primary and
// alternate screens each keep their own slot.
type SavedCursor struct {
	Cursor   Cursor
	Style    grid.CellStyle
	Origin   bool
	AutoWrap bool
}
