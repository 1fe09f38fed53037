package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRowText(g *Grid, row int, text string) {
	for col, r := range []rune(text) {
		g.SetCell(row, col, Cell{Char: r, Style: DefaultStyle()})
	}
}

func TestNewGridIsEmpty(t *testing.T) {
	g := New(10, 4)
	cols, rows := g.Size()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 4, rows)
	assert.Equal(t, ' ', g.At(0, 0).Char)
	assert.Equal(t, ' ', g.At(3, 9).Char)
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := New(0, -5)
	cols, rows := g.Size()
	assert.Equal(t, 1, cols)
	assert.Equal(t, 1, rows)
}

func TestSetCellAndAt(t *testing.T) {
	g := New(10, 4)
	g.SetCell(1, 2, Cell{Char: 'x', Style: DefaultStyle()})
	assert.Equal(t, 'x', g.At(1, 2).Char)

	// Out of range writes and reads are safe
	g.SetCell(99, 99, Cell{Char: 'y'})
	assert.Equal(t, ' ', g.At(99, 99).Char)
	assert.Equal(t, ' ', g.At(-1, 0).Char)
}

func TestClearRow(t *testing.T) {
	g := New(10, 4)
	setRowText(g, 2, "hello")
	g.ClearRow(2)
	assert.Equal(t, "", g.RowText(2))
}

func TestInsertCellsShiftsRight(t *testing.T) {
	g := New(10, 2)
	setRowText(g, 0, "abcdef")
	g.InsertCells(0, 2, 3)
	assert.Equal(t, "ab   cdef", g.RowText(0))
}

func TestInsertCellsDropsOverflow(t *testing.T) {
	g := New(5, 1)
	setRowText(g, 0, "abcde")
	g.InsertCells(0, 3, 10)
	assert.Equal(t, "abc", g.RowText(0))
}

func TestDeleteCellsShiftsLeft(t *testing.T) {
	g := New(10, 2)
	setRowText(g, 0, "abcdef")
	g.DeleteCells(0, 1, 2)
	assert.Equal(t, "adef", g.RowText(0))
}

func TestInsertLine(t *testing.T) {
	g := New(10, 4)
	setRowText(g, 0, "one")
	setRowText(g, 1, "two")
	setRowText(g, 2, "three")
	g.InsertLine(1, 3)
	assert.Equal(t, "one", g.RowText(0))
	assert.Equal(t, "", g.RowText(1))
	assert.Equal(t, "two", g.RowText(2))
	assert.Equal(t, "three", g.RowText(3))
}

func TestDeleteLine(t *testing.T) {
	g := New(10, 4)
	setRowText(g, 0, "one")
	setRowText(g, 1, "two")
	setRowText(g, 2, "three")
	g.DeleteLine(1, 3)
	assert.Equal(t, "one", g.RowText(0))
	assert.Equal(t, "three", g.RowText(1))
	assert.Equal(t, "", g.RowText(2))
}

func TestScrollUpFullScreenFeedsScrollback(t *testing.T) {
	g := New(10, 3)
	setRowText(g, 0, "first")
	setRowText(g, 1, "second")
	g.ScrollUp(0, 2)

	assert.Equal(t, "second", g.RowText(0))
	assert.Equal(t, "", g.RowText(2))

	require.Equal(t, 1, g.ScrollbackLen())
	line := g.ScrollbackLine(0)
	require.Len(t, line, 10)
	assert.Equal(t, 'f', line[0].Char)
}

func TestScrollUpRegionSkipsScrollback(t *testing.T) {
	g := New(10, 5)
	setRowText(g, 1, "top")
	setRowText(g, 2, "mid")
	setRowText(g, 4, "stays")
	g.ScrollUp(1, 3)

	assert.Equal(t, "mid", g.RowText(1))
	assert.Equal(t, "", g.RowText(3))
	assert.Equal(t, "stays", g.RowText(4))
	assert.Equal(t, 0, g.ScrollbackLen())
}

func TestScrollDown(t *testing.T) {
	g := New(10, 4)
	setRowText(g, 0, "one")
	setRowText(g, 1, "two")
	g.ScrollDown(0, 3)
	assert.Equal(t, "", g.RowText(0))
	assert.Equal(t, "one", g.RowText(1))
	assert.Equal(t, "two", g.RowText(2))
}

func TestResizePreservesOverlap(t *testing.T) {
	g := New(10, 4)
	setRowText(g, 0, "keep me")
	setRowText(g, 3, "gone")

	g.Resize(6, 2)
	cols, rows := g.Size()
	assert.Equal(t, 6, cols)
	assert.Equal(t, 2, rows)
	assert.Equal(t, "keep m", g.RowText(0))

	g.Resize(12, 4)
	assert.Equal(t, "keep m", g.RowText(0))
	assert.Equal(t, "", g.RowText(3))
}

func TestVisibleText(t *testing.T) {
	g := New(10, 4)
	setRowText(g, 0, "alpha")
	setRowText(g, 1, "beta")
	assert.Equal(t, "alpha\nbeta", g.VisibleText())
}

func TestRuneWidth(t *testing.T) {
	assert.Equal(t, 1, RuneWidth('a'))
	assert.Equal(t, 1, RuneWidth('~'))
	assert.Equal(t, 2, RuneWidth('日'))
	assert.Equal(t, 2, RuneWidth('한'))
	assert.Equal(t, 0, RuneWidth(0))
	assert.Equal(t, 0, RuneWidth('\u0301')) // combining acute
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 5, StringWidth("hello"))
	assert.Equal(t, 4, StringWidth("日本"))
	assert.Equal(t, 7, StringWidth("a日b本c"))
}

func TestPaletteColor(t *testing.T) {
	// System colors
	r, g, b := PaletteColor(0)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
	r, g, b = PaletteColor(15)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	// Color cube: index 196 is pure red
	r, g, b = PaletteColor(196)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	// Grayscale ramp start
	r, g, b = PaletteColor(232)
	assert.Equal(t, [3]uint8{8, 8, 8}, [3]uint8{r, g, b})
}

func TestColorRGB(t *testing.T) {
	r, g, b := RGBColor(10, 20, 30).RGB(true)
	assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})

	r, g, b = IndexedColor(196).RGB(true)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	// Defaults resolve against the palette
	r, g, b = DefaultColor().RGB(false)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}
