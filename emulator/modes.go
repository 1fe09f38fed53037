package emulator

// TerminalMode is a bit flag identifying one of the terminal's toggleable
// modes. The active set is a plain bitmask, so membership tests, copies and
// toggles are O(1) with no allocation.
type TerminalMode uint32

const (
	// ModeCursorKeys is application cursor keys (DECCKM, ?1)
	ModeCursorKeys TerminalMode = 1 << iota
	// ModeOrigin makes vertical addressing relative to the scroll region (DECOM, ?6)
	ModeOrigin
	// ModeAutoWrap wraps printing at the right margin (DECAWM, ?7)
	ModeAutoWrap
	// ModeShowCursor makes the text cursor visible (DECTCEM, ?25)
	ModeShowCursor
	// ModeMouseX10 is X10 compatibility mouse reporting (?9)
	ModeMouseX10
	// ModeMouseVT200 is normal button press/release tracking (?1000)
	ModeMouseVT200
	// ModeMouseBtnEvent adds motion-while-pressed events (?1002)
	ModeMouseBtnEvent
	// ModeMouseAnyEvent reports all motion events (?1003)
	ModeMouseAnyEvent
	// ModeMouseFocus reports focus in/out (?1004)
	ModeMouseFocus
	// ModeMouseUTF8 is UTF-8 extended coordinates (?1005)
	ModeMouseUTF8
	// ModeMouseSGR is SGR extended coordinates (?1006)
	ModeMouseSGR
	// ModeMouseUrxvt is urxvt extended coordinates (?1015)
	ModeMouseUrxvt
	// ModeMouseSGRPixel is SGR pixel-position reporting (?1016)
	ModeMouseSGRPixel
	// ModeAlternateScreen is the alternate screen buffer (?47/?1047/?1049)
	ModeAlternateScreen
	// ModeBracketedPaste wraps pastes in ESC[200~ / ESC[201~ (?2004)
	ModeBracketedPaste
	// ModeAppKeypad is application keypad mode (DECKPAM, ESC = / ESC >)
	ModeAppKeypad
	// ModeLineFeedNewLine makes LF also return the carriage (LNM, mode 20)
	ModeLineFeedNewLine
)

func (t *Terminal) hasMode(m TerminalMode) bool {
	return t.modes&m != 0
}

// setMode toggles mode membership. ShowCursor additionally mirrors into the
// cursor's visible flag in the same operation.
func (t *Terminal) setMode(m TerminalMode, enabled bool) {
	if enabled {
		t.modes |= m
	} else {
		t.modes &^= m
	}
	if m == ModeShowCursor {
		t.cursor.Visible = enabled
	}
}
