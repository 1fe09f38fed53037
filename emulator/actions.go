package emulator

import (
	"github.com/javanhut/RookTerm/grid"
)

// printRune writes a rune at the cursor with the current style and advances
// by the rune's display width. At the right margin the write either wraps
// (autowrap) or overstrikes the last column.
func (t *Terminal) printRune(r rune) {
	w := grid.RuneWidth(r)
	if w == 0 {
		return
	}
	if t.cursor.Col >= t.cols {
		if t.hasMode(ModeAutoWrap) {
			t.carriageReturn()
			t.lineFeed()
		} else {
			t.cursor.Col = t.cols - 1
		}
	}
	t.screen.SetCell(t.cursor.Row, t.cursor.Col, grid.Cell{Char: r, Style: t.style})
	if w == 2 && t.cursor.Col+1 < t.cols {
		// Spacer cell behind a wide character
		t.screen.SetCell(t.cursor.Row, t.cursor.Col+1, grid.Cell{Char: 0, Style: t.style})
	}
	t.cursor.Col += w
}

func (t *Terminal) lineFeed() {
	if t.cursor.Row == t.scrollBottom {
		t.screen.ScrollUp(t.scrollTop, t.scrollBottom)
	} else if t.cursor.Row < t.rows-1 {
		t.cursor.Row++
	}
	if t.hasMode(ModeLineFeedNewLine) {
		t.cursor.Col = 0
	}
}

func (t *Terminal) carriageReturn() {
	t.cursor.Col = 0
}

// index moves down one row, scrolling the region when at its bottom
func (t *Terminal) index() {
	if t.cursor.Row == t.scrollBottom {
		t.screen.ScrollUp(t.scrollTop, t.scrollBottom)
	} else if t.cursor.Row < t.rows-1 {
		t.cursor.Row++
	}
}

// reverseIndex moves up one row, scrolling the region when at its top
func (t *Terminal) reverseIndex() {
	if t.cursor.Row == t.scrollTop {
		t.screen.ScrollDown(t.scrollTop, t.scrollBottom)
	} else if t.cursor.Row > 0 {
		t.cursor.Row--
	}
}

func (t *Terminal) nextLine() {
	t.lineFeed()
	t.cursor.Col = 0
}

// Cursor movement. Vertical clamping respects the scroll region while
// origin mode is active; horizontal movement always clamps to the line.

func (t *Terminal) cursorUp(n int) {
	top := 0
	if t.hasMode(ModeOrigin) {
		top = t.scrollTop
	}
	t.cursor.Row -= n
	if t.cursor.Row < top {
		t.cursor.Row = top
	}
}

func (t *Terminal) cursorDown(n int) {
	bottom := t.rows - 1
	if t.hasMode(ModeOrigin) {
		bottom = t.scrollBottom
	}
	t.cursor.Row += n
	if t.cursor.Row > bottom {
		t.cursor.Row = bottom
	}
}

func (t *Terminal) cursorForward(n int) {
	t.cursor.Col += n
	if t.cursor.Col > t.cols-1 {
		t.cursor.Col = t.cols - 1
	}
}

func (t *Terminal) cursorBack(n int) {
	t.cursor.Col -= n
	if t.cursor.Col < 0 {
		t.cursor.Col = 0
	}
}

func (t *Terminal) cursorNextLine(n int) {
	t.cursorDown(n)
	t.cursor.Col = 0
}

func (t *Terminal) cursorPrevLine(n int) {
	t.cursorUp(n)
	t.cursor.Col = 0
}

// cursorCol moves to a 1-indexed column
func (t *Terminal) cursorCol(n int) {
	if n > 0 {
		n--
	}
	if n > t.cols-1 {
		n = t.cols - 1
	}
	t.cursor.Col = n
}

// cursorRow moves to a 1-indexed row, offset by the scroll region top in
// origin mode
func (t *Terminal) cursorRow(n int) {
	if n > 0 {
		n--
	}
	offset, bottom := 0, t.rows-1
	if t.hasMode(ModeOrigin) {
		offset, bottom = t.scrollTop, t.scrollBottom
	}
	row := offset + n
	if row > bottom {
		row = bottom
	}
	t.cursor.Row = row
}

func (t *Terminal) cursorPosition(row, col int) {
	t.cursorRow(row)
	t.cursorCol(col)
}

// Erase operations

func (t *Terminal) eraseDisplay(mode int) {
	switch mode {
	case 0: // cursor to end of display
		t.eraseLine(0)
		for row := t.cursor.Row + 1; row < t.rows; row++ {
			t.screen.ClearRow(row)
		}
	case 1: // start of display to cursor
		for row := 0; row < t.cursor.Row; row++ {
			t.screen.ClearRow(row)
		}
		t.eraseLine(1)
	case 2, 3: // everything (3 also clears scrollback in real xterm)
		for row := 0; row < t.rows; row++ {
			t.screen.ClearRow(row)
		}
	}
}

func (t *Terminal) eraseLine(mode int) {
	row := t.cursor.Row
	switch mode {
	case 0: // cursor to end of line
		for col := t.cursor.Col; col < t.cols; col++ {
			t.screen.SetCell(row, col, grid.NewCell())
		}
	case 1: // start of line to cursor
		for col := 0; col <= t.cursor.Col && col < t.cols; col++ {
			t.screen.SetCell(row, col, grid.NewCell())
		}
	case 2:
		t.screen.ClearRow(row)
	}
}

func (t *Terminal) insertChars(n int) {
	t.screen.InsertCells(t.cursor.Row, t.cursor.Col, n)
}

func (t *Terminal) deleteChars(n int) {
	t.screen.DeleteCells(t.cursor.Row, t.cursor.Col, n)
}

func (t *Terminal) eraseChars(n int) {
	for i := 0; i < n; i++ {
		col := t.cursor.Col + i
		if col >= t.cols {
			break
		}
		t.screen.SetCell(t.cursor.Row, col, grid.NewCell())
	}
}

func (t *Terminal) insertLines(n int) {
	for i := 0; i < n; i++ {
		t.screen.InsertLine(t.cursor.Row, t.scrollBottom)
	}
}

func (t *Terminal) deleteLines(n int) {
	for i := 0; i < n; i++ {
		t.screen.DeleteLine(t.cursor.Row, t.scrollBottom)
	}
}

func (t *Terminal) scrollUp(n int) {
	for i := 0; i < n; i++ {
		t.screen.ScrollUp(t.scrollTop, t.scrollBottom)
	}
}

func (t *Terminal) scrollDown(n int) {
	for i := 0; i < n; i++ {
		t.screen.ScrollDown(t.scrollTop, t.scrollBottom)
	}
}

// Tab stops

func (t *Terminal) tab() {
	next := t.cols - 1
	for _, stop := range t.tabStops {
		if stop > t.cursor.Col {
			next = stop
			break
		}
	}
	if next > t.cols-1 {
		next = t.cols - 1
	}
	t.cursor.Col = next
}

func (t *Terminal) setTabStop() {
	col := t.cursor.Col
	for i, stop := range t.tabStops {
		if stop == col {
			return
		}
		if stop > col {
			t.tabStops = append(t.tabStops, 0)
			copy(t.tabStops[i+1:], t.tabStops[i:])
			t.tabStops[i] = col
			return
		}
	}
	t.tabStops = append(t.tabStops, col)
}

func (t *Terminal) clearTabStops(mode int) {
	switch mode {
	case 0: // at cursor
		for i, stop := range t.tabStops {
			if stop == t.cursor.Col {
				t.tabStops = append(t.tabStops[:i], t.tabStops[i+1:]...)
				return
			}
		}
	case 3: // all
		t.tabStops = t.tabStops[:0]
	}
}

// Cursor save/restore (DECSC/DECRC, CSI s/u). The primary and alternate
// screens have independent slots so a restore after a screen swap never
// leaks the other screen's saved state.

func (t *Terminal) saveCursor() {
	saved := &SavedCursor{
		Cursor:   t.cursor,
		Style:    t.style,
		Origin:   t.hasMode(ModeOrigin),
		AutoWrap: t.hasMode(ModeAutoWrap),
	}
	if t.altScreenActive() {
		t.savedCursorAlt = saved
	} else {
		t.savedCursor = saved
	}
}

func (t *Terminal) restoreCursor() {
	saved := t.savedCursor
	if t.altScreenActive() {
		saved = t.savedCursorAlt
	}
	if saved == nil {
		return
	}
	t.cursor = saved.Cursor
	t.style = saved.Style
	t.setMode(ModeOrigin, saved.Origin)
	t.setMode(ModeAutoWrap, saved.AutoWrap)
}

func (t *Terminal) altScreenActive() bool {
	return t.savedScreen != nil
}

// swapScreen parks or unparks the primary buffer, leaving the cursor
// where it is (modes 47/1047). It reports whether a swap happened.
func (t *Terminal) swapScreen(enable bool) bool {
	if enable && !t.altScreenActive() {
		t.savedScreen = t.screen
		t.screen = t.newScreen(t.cols, t.rows)
		t.setMode(ModeAlternateScreen, true)
		return true
	}
	if !enable && t.altScreenActive() {
		t.screen = t.savedScreen
		t.savedScreen = nil
		t.setMode(ModeAlternateScreen, false)
		return true
	}
	return false
}

// setAlternateScreen is the 1049 variant of the swap: entering starts on
// the fresh screen with a default cursor; leaving restores the primary
// screen's saved cursor if one exists.
func (t *Terminal) setAlternateScreen(enable bool) {
	if !t.swapScreen(enable) {
		return
	}
	if enable {
		t.cursor = defaultCursor()
	} else if t.savedCursor != nil {
		t.cursor = t.savedCursor.Cursor
	}
}

// setScrollRegion takes 1-indexed DECSTBM bounds and homes the cursor
func (t *Terminal) setScrollRegion(top, bottom int) {
	if top > 0 {
		top--
	}
	if bottom > 0 {
		bottom--
	}
	if bottom > t.rows-1 {
		bottom = t.rows - 1
	}
	if top < bottom {
		t.scrollTop = top
		t.scrollBottom = bottom
		t.cursorPosition(1, 1)
	}
}

func (t *Terminal) deviceStatusReport(mode int) {
	switch mode {
	case 5:
		// operating status: device OK, no reply needed from the core
	case 6:
		t.emit(CursorPositionReportEvent{})
	}
}
