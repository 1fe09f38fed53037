package grid

import (
	"strings"
	"sync"
)

const (
	MaxScrollback = 10000
)

// Grid is the terminal cell buffer. It knows nothing about escape sequences
// or cursor state; the emulator drives it through row/column mutations.
// All coordinates are 0-indexed and out-of-range arguments are ignored.
type Grid struct {
	cells      []Cell
	cols       int
	rows       int
	scrollback [][]Cell
	mu         sync.RWMutex
}

// New creates a grid with the given dimensions, filled with empty cells
func New(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i] = NewCell()
	}
	return &Grid{
		cells:      cells,
		cols:       cols,
		rows:       rows,
		scrollback: make([][]Cell, 0, MaxScrollback),
	}
}

// index returns the linear index for a cell position
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Size returns the grid dimensions
func (g *Grid) Size() (cols, rows int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cols, g.rows
}

// At returns the cell at the given position
func (g *Grid) At(row, col int) Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.inBounds(row, col) {
		return NewCell()
	}
	return g.cells[g.index(row, col)]
}

// SetCell sets the cell at the given position
func (g *Grid) SetCell(row, col int, cell Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.inBounds(row, col) {
		return
	}
	g.cells[g.index(row, col)] = cell
}

// ClearRow resets every cell in a row to the empty cell
func (g *Grid) ClearRow(row int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearRowLocked(row)
}

func (g *Grid) clearRowLocked(row int) {
	if row < 0 || row >= g.rows {
		return
	}
	for col := 0; col < g.cols; col++ {
		g.cells[g.index(row, col)] = NewCell()
	}
}

// InsertCells inserts n blank cells at (row, col), shifting the rest of the
// row right. Cells pushed past the right edge are dropped.
func (g *Grid) InsertCells(row, col, n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.inBounds(row, col) || n < 1 {
		return
	}
	if n > g.cols-col {
		n = g.cols - col
	}
	for c := g.cols - 1; c >= col+n; c-- {
		g.cells[g.index(row, c)] = g.cells[g.index(row, c-n)]
	}
	for c := col; c < col+n; c++ {
		g.cells[g.index(row, c)] = NewCell()
	}
}

// DeleteCells deletes n cells at (row, col), shifting the rest of the row
// left and filling the tail with blanks
func (g *Grid) DeleteCells(row, col, n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.inBounds(row, col) || n < 1 {
		return
	}
	if n > g.cols-col {
		n = g.cols - col
	}
	for c := col; c < g.cols-n; c++ {
		g.cells[g.index(row, c)] = g.cells[g.index(row, c+n)]
	}
	start := g.cols - n
	if start < col {
		start = col
	}
	for c := start; c < g.cols; c++ {
		g.cells[g.index(row, c)] = NewCell()
	}
}

// InsertLine inserts a blank line at row, shifting rows down to bottom
// (inclusive). The line at bottom falls off.
func (g *Grid) InsertLine(row, bottom int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if row < 0 || bottom >= g.rows || row > bottom {
		return
	}
	for r := bottom; r > row; r-- {
		g.copyRowLocked(r, r-1)
	}
	g.clearRowLocked(row)
}

// DeleteLine deletes the line at row, shifting rows up to bottom (inclusive)
// and leaving a blank line at bottom
func (g *Grid) DeleteLine(row, bottom int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if row < 0 || bottom >= g.rows || row > bottom {
		return
	}
	for r := row; r < bottom; r++ {
		g.copyRowLocked(r, r+1)
	}
	g.clearRowLocked(bottom)
}

func (g *Grid) copyRowLocked(dst, src int) {
	d := g.index(dst, 0)
	s := g.index(src, 0)
	copy(g.cells[d:d+g.cols], g.cells[s:s+g.cols])
}

// ScrollUp scrolls rows top..bottom (inclusive) up by one line. When the
// region covers the whole grid the departing top row is kept in scrollback.
func (g *Grid) ScrollUp(top, bottom int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if top < 0 || bottom >= g.rows || top > bottom {
		return
	}
	if top == 0 && bottom == g.rows-1 {
		saved := make([]Cell, g.cols)
		copy(saved, g.cells[:g.cols])
		g.scrollback = append(g.scrollback, saved)
		if len(g.scrollback) > MaxScrollback {
			g.scrollback = g.scrollback[1:]
		}
	}
	for r := top; r < bottom; r++ {
		g.copyRowLocked(r, r+1)
	}
	g.clearRowLocked(bottom)
}

// ScrollDown scrolls rows top..bottom (inclusive) down by one line
func (g *Grid) ScrollDown(top, bottom int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if top < 0 || bottom >= g.rows || top > bottom {
		return
	}
	for r := bottom; r > top; r-- {
		g.copyRowLocked(r, r-1)
	}
	g.clearRowLocked(top)
}

// Resize changes the grid dimensions, preserving the overlapping region
func (g *Grid) Resize(cols, rows int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cols < 1 || rows < 1 {
		return
	}

	newCells := make([]Cell, cols*rows)
	for i := range newCells {
		newCells[i] = NewCell()
	}
	for row := 0; row < minInt(rows, g.rows); row++ {
		for col := 0; col < minInt(cols, g.cols); col++ {
			newCells[row*cols+col] = g.cells[row*g.cols+col]
		}
	}

	g.cells = newCells
	g.cols = cols
	g.rows = rows
}

// ScrollbackLen returns the number of lines currently held in scrollback
func (g *Grid) ScrollbackLen() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.scrollback)
}

// ScrollbackLine returns a copy of a scrollback line, 0 being the oldest
func (g *Grid) ScrollbackLine(i int) []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.scrollback) {
		return nil
	}
	line := make([]Cell, len(g.scrollback[i]))
	copy(line, g.scrollback[i])
	return line
}

// RowText returns the text content of a row with trailing blanks trimmed
func (g *Grid) RowText(row int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rowTextLocked(row)
}

func (g *Grid) rowTextLocked(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	var b strings.Builder
	b.Grow(g.cols)
	for col := 0; col < g.cols; col++ {
		ch := g.cells[g.index(row, col)].Char
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

// VisibleText returns the whole grid as plain text, one line per row,
// with trailing blanks and blank lines trimmed
func (g *Grid) VisibleText() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	lines := make([]string, g.rows)
	for row := 0; row < g.rows; row++ {
		lines[row] = g.rowTextLocked(row)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
