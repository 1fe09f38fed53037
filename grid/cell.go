package grid

// ColorType identifies the kind of color stored in a Color value
type ColorType uint8

const (
	ColorDefault ColorType = iota
	ColorIndexed
	ColorRGB
)

// Color represents a terminal color: the terminal default, one of the 256
// indexed palette colors, or a 24-bit RGB value
type Color struct {
	Type    ColorType
	Index   uint8 // for indexed colors (0-255)
	R, G, B uint8 // for RGB colors
}

// DefaultColor returns the terminal default color
func DefaultColor() Color {
	return Color{Type: ColorDefault}
}

// IndexedColor creates a palette-indexed color
func IndexedColor(index uint8) Color {
	return Color{Type: ColorIndexed, Index: index}
}

// RGBColor creates a 24-bit RGB color
func RGBColor(r, g, b uint8) Color {
	return Color{Type: ColorRGB, R: r, G: g, B: b}
}

// CellStyle holds the rendition attributes applied to a cell
type CellStyle struct {
	Fg            Color
	Bg            Color
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

// DefaultStyle returns the style applied to freshly cleared cells
func DefaultStyle() CellStyle {
	return CellStyle{
		Fg: DefaultColor(),
		Bg: DefaultColor(),
	}
}

// Cell represents a single terminal cell
type Cell struct {
	Char  rune
	Style CellStyle
}

// NewCell creates an empty cell
func NewCell() Cell {
	return Cell{
		Char:  ' ',
		Style: DefaultStyle(),
	}
}
