package emulator

// executeCsi dispatches a completed control sequence. Unknown final bytes
// are deliberately no-ops: a broken program must never wedge the parser.
func (t *Terminal) executeCsi() {
	if t.csi.Private {
		t.executePrivateCsi()
		return
	}

	cmd := &t.csi
	switch cmd.Final {
	case '@': // ICH
		t.insertChars(cmd.Param1())
	case 'A': // CUU
		t.cursorUp(cmd.Param1())
	case 'B': // CUD
		t.cursorDown(cmd.Param1())
	case 'C': // CUF
		t.cursorForward(cmd.Param1())
	case 'D': // CUB
		t.cursorBack(cmd.Param1())
	case 'E': // CNL
		t.cursorNextLine(cmd.Param1())
	case 'F': // CPL
		t.cursorPrevLine(cmd.Param1())
	case 'G': // CHA
		t.cursorCol(cmd.Param1())
	case 'H', 'f': // CUP / HVP
		t.cursorPosition(cmd.Param1(), cmd.Param2())
	case 'J': // ED
		t.eraseDisplay(cmd.Param(0, 0))
	case 'K': // EL
		t.eraseLine(cmd.Param(0, 0))
	case 'L': // IL
		t.insertLines(cmd.Param1())
	case 'M': // DL
		t.deleteLines(cmd.Param1())
	case 'P': // DCH
		t.deleteChars(cmd.Param1())
	case 'S': // SU
		t.scrollUp(cmd.Param1())
	case 'T': // SD
		t.scrollDown(cmd.Param1())
	case 'X': // ECH
		t.eraseChars(cmd.Param1())
	case 'c': // DA
		if cmd.Param(0, 0) == 0 {
			t.emit(DeviceAttributesEvent{})
		}
	case 'd': // VPA
		t.cursorRow(cmd.Param1())
	case 'g': // TBC
		t.clearTabStops(cmd.Param(0, 0))
	case 'h': // SM
		t.setAnsiModes(true)
	case 'l': // RM
		t.setAnsiModes(false)
	case 'm': // SGR
		t.executeSgr()
	case 'n': // DSR
		t.deviceStatusReport(cmd.Param(0, 0))
	case 'q':
		if cmd.hasIntermediate(' ') { // DECSCUSR
			t.setCursorStyle(cmd.Param(0, 0))
		}
	case 'r': // DECSTBM
		t.setScrollRegion(cmd.Param(0, 1), cmd.Param(1, t.rows))
	case 's': // SCOSC
		t.saveCursor()
	case 'u': // SCORC
		t.restoreCursor()
	case 't':
		t.executeWindowManipulation()
	}
}

// executePrivateCsi toggles DEC private modes (CSI ? ... h/l)
func (t *Terminal) executePrivateCsi() {
	set := t.csi.Final == 'h'
	if !set && t.csi.Final != 'l' {
		return
	}

	for _, param := range t.csi.Params {
		switch param {
		case 1:
			t.setMode(ModeCursorKeys, set)
		case 6:
			t.setMode(ModeOrigin, set)
		case 7:
			t.setMode(ModeAutoWrap, set)
		case 9:
			t.setMode(ModeMouseX10, set)
		case 12:
			t.cursor.Blinking = set
		case 25:
			t.setMode(ModeShowCursor, set)
		case 47, 1047:
			t.swapScreen(set)
		case 1000:
			t.setMode(ModeMouseVT200, set)
		case 1002:
			t.setMode(ModeMouseBtnEvent, set)
		case 1003:
			t.setMode(ModeMouseAnyEvent, set)
		case 1004:
			t.setMode(ModeMouseFocus, set)
		case 1005:
			t.setMode(ModeMouseUTF8, set)
		case 1006:
			t.setMode(ModeMouseSGR, set)
		case 1015:
			t.setMode(ModeMouseUrxvt, set)
		case 1016:
			t.setMode(ModeMouseSGRPixel, set)
		case 1049:
			t.setAlternateScreen(set)
		case 2004:
			t.setMode(ModeBracketedPaste, set)
		}
	}
}

// setAnsiModes handles the non-private SM/RM subset the emulator supports
func (t *Terminal) setAnsiModes(set bool) {
	for _, param := range t.csi.Params {
		if param == 20 { // LNM
			t.setMode(ModeLineFeedNewLine, set)
		}
	}
}

// setCursorStyle applies DECSCUSR: 0-2 block, 3-4 underline, 5-6 bar;
// odd codes (and 0) blink, even codes are steady
func (t *Terminal) setCursorStyle(style int) {
	switch style {
	case 0, 1, 2:
		t.cursor.Shape = CursorBlock
	case 3, 4:
		t.cursor.Shape = CursorUnderline
	case 5, 6:
		t.cursor.Shape = CursorBar
	default:
		return
	}
	t.cursor.Blinking = style == 0 || style%2 == 1
}

// executeWindowManipulation handles XTWINOPS; only the resize request
// (subcommand 8) is supported
func (t *Terminal) executeWindowManipulation() {
	cmd := &t.csi
	if cmd.Param(0, 0) != 8 {
		return
	}
	rows := cmd.Param(1, 0)
	cols := cmd.Param(2, 0)
	if rows > 0 && cols > 0 {
		t.emit(ResizeRequestEvent{Cols: cols, Rows: rows})
	}
}
