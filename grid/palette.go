package grid

import (
	"github.com/lucasb-eyer/go-colorful"
)

// palette256 is the standard xterm 256-color palette: 16 system colors,
// a 6x6x6 color cube, and a 24-step grayscale ramp.
var palette256 = buildPalette()

func buildPalette() [256]colorful.Color {
	var p [256]colorful.Color

	system := [16][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, c := range system {
		p[i] = rgb255(c[0], c[1], c[2])
	}

	// 216-color cube: levels 0, 95, 135, 175, 215, 255
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	for i := 0; i < 216; i++ {
		r := levels[i/36]
		g := levels[(i/6)%6]
		b := levels[i%6]
		p[16+i] = rgb255(r, g, b)
	}

	// Grayscale ramp: 8, 18, ..., 238
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		p[232+i] = rgb255(v, v, v)
	}
	return p
}

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// PaletteColor returns the RGB components of a 256-color palette entry
func PaletteColor(index uint8) (r, g, b uint8) {
	return palette256[index].RGB255()
}

// RGB resolves a color to its RGB components. The terminal default resolves
// to the palette's white and black entries depending on foreground use.
func (c Color) RGB(foreground bool) (r, g, b uint8) {
	switch c.Type {
	case ColorIndexed:
		return PaletteColor(c.Index)
	case ColorRGB:
		return c.R, c.G, c.B
	default:
		if foreground {
			return PaletteColor(7)
		}
		return PaletteColor(0)
	}
}
