package emulator

import (
	"github.com/javanhut/RookTerm/grid"
)

// executeSgr interprets an SGR parameter list. The walk uses an explicit
// index because extended-color codes (38/48) consume a variable number of
// following parameters.
func (t *Terminal) executeSgr() {
	params := t.csi.Params
	if len(params) == 0 {
		t.style = grid.DefaultStyle()
		return
	}

	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			t.style = grid.DefaultStyle()
		case p == 1:
			t.style.Bold = true
		case p == 2:
			t.style.Dim = true
		case p == 3:
			t.style.Italic = true
		case p == 4:
			t.style.Underline = true
		case p == 5 || p == 6:
			t.style.Blink = true
		case p == 7:
			t.style.Reverse = true
		case p == 8:
			t.style.Hidden = true
		case p == 9:
			t.style.Strikethrough = true
		case p == 21:
			t.style.Bold = false
		case p == 22:
			t.style.Bold = false
			t.style.Dim = false
		case p == 23:
			t.style.Italic = false
		case p == 24:
			t.style.Underline = false
		case p == 25:
			t.style.Blink = false
		case p == 27:
			t.style.Reverse = false
		case p == 28:
			t.style.Hidden = false
		case p == 29:
			t.style.Strikethrough = false

		case p >= 30 && p <= 37:
			t.style.Fg = grid.IndexedColor(uint8(p - 30))
		case p == 38:
			if color, consumed := parseExtendedColor(params[i:]); consumed > 0 {
				t.style.Fg = color
				i += consumed
			}
		case p == 39:
			t.style.Fg = grid.DefaultColor()

		case p >= 40 && p <= 47:
			t.style.Bg = grid.IndexedColor(uint8(p - 40))
		case p == 48:
			if color, consumed := parseExtendedColor(params[i:]); consumed > 0 {
				t.style.Bg = color
				i += consumed
			}
		case p == 49:
			t.style.Bg = grid.DefaultColor()

		case p >= 90 && p <= 97: // bright foreground
			t.style.Fg = grid.IndexedColor(uint8(p - 90 + 8))
		case p >= 100 && p <= 107: // bright background
			t.style.Bg = grid.IndexedColor(uint8(p - 100 + 8))
		}
	}
}

// parseExtendedColor decodes 38;5;N (256-color) or 38;2;R;G;B (truecolor)
// starting at the 38/48 introducer. It returns the color and the number of
// extra parameters consumed beyond the introducer, or 0 when malformed so
// the caller's index advance stays in sync with what was actually used.
func parseExtendedColor(params []int) (grid.Color, int) {
	if len(params) < 2 {
		return grid.Color{}, 0
	}
	switch params[1] {
	case 5:
		if len(params) < 3 {
			return grid.Color{}, 0
		}
		return grid.IndexedColor(uint8(params[2])), 2
	case 2:
		if len(params) < 5 {
			return grid.Color{}, 0
		}
		return grid.RGBColor(uint8(params[2]), uint8(params[3]), uint8(params[4])), 4
	default:
		return grid.Color{}, 0
	}
}
