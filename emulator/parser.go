package emulator

import (
	"unicode/utf8"
)

// ParserState identifies the active state of the escape sequence parser.
// Exactly one state is active at a time and every byte has a defined
// transition in every state.
type ParserState uint8

const (
	StateGround ParserState = iota
	StateEscape
	StateCsiEntry
	StateCsiParam
	StateCsiIntermediate
	StateOscString
	StateDcsEntry
	StateDcsParam
	StateDcsPassthrough
	StateUtf8
)

func (t *Terminal) processByte(b byte) {
	switch t.state {
	case StateGround:
		t.handleGround(b)
	case StateEscape:
		t.handleEscape(b)
	case StateCsiEntry:
		t.handleCsiEntry(b)
	case StateCsiParam:
		t.handleCsiParam(b)
	case StateCsiIntermediate:
		t.handleCsiIntermediate(b)
	case StateOscString:
		t.handleOscString(b)
	case StateDcsEntry:
		t.handleDcsEntry(b)
	case StateDcsParam:
		t.handleDcsParam(b)
	case StateDcsPassthrough:
		t.handleDcsPassthrough(b)
	case StateUtf8:
		t.handleUtf8(b)
	}
}

func (t *Terminal) handleGround(b byte) {
	switch {
	case b == 0x00: // NUL
	case b == 0x07: // BEL
		t.emit(BellEvent{})
	case b == 0x08: // BS
		t.cursorBack(1)
	case b == 0x09: // HT
		t.tab()
	case b == 0x0A || b == 0x0B || b == 0x0C: // LF, VT, FF
		t.lineFeed()
	case b == 0x0D: // CR
		t.carriageReturn()
	case b == 0x0E || b == 0x0F: // SO, SI
	case b == 0x1B: // ESC
		t.state = StateEscape
	case b >= 0x20 && b <= 0x7E:
		t.printRune(rune(b))
	case b == 0x7F: // DEL

	// UTF-8 lead bytes
	case b >= 0xC0 && b <= 0xDF:
		t.startUtf8(b, 1)
	case b >= 0xE0 && b <= 0xEF:
		t.startUtf8(b, 2)
	case b >= 0xF0 && b <= 0xF7:
		t.startUtf8(b, 3)

	// C1 controls, same semantics as their 7-bit ESC forms
	case b == 0x84: // IND
		t.index()
	case b == 0x85: // NEL
		t.nextLine()
	case b == 0x88: // HTS
		t.setTabStop()
	case b == 0x8D: // RI
		t.reverseIndex()
	case b == 0x9B: // CSI
		t.enterCsi()
	case b == 0x9D: // OSC
		t.enterOsc()
	}
}

func (t *Terminal) handleEscape(b byte) {
	switch b {
	case '[':
		t.enterCsi()
	case ']':
		t.enterOsc()
	case 'P':
		t.state = StateDcsEntry
	case '7': // DECSC
		t.saveCursor()
		t.state = StateGround
	case '8': // DECRC
		t.restoreCursor()
		t.state = StateGround
	case 'D': // IND
		t.index()
		t.state = StateGround
	case 'E': // NEL
		t.nextLine()
		t.state = StateGround
	case 'H': // HTS
		t.setTabStop()
		t.state = StateGround
	case 'M': // RI
		t.reverseIndex()
		t.state = StateGround
	case 'c': // RIS
		t.Reset()
	case '=': // DECKPAM
		t.setMode(ModeAppKeypad, true)
		t.state = StateGround
	case '>': // DECKPNM
		t.setMode(ModeAppKeypad, false)
		t.state = StateGround
	default:
		t.state = StateGround
	}
}

func (t *Terminal) enterCsi() {
	t.csi = CsiCommand{}
	t.state = StateCsiEntry
}

func (t *Terminal) enterOsc() {
	t.oscData = t.oscData[:0]
	t.oscNumber = 0
	t.oscNumberDone = false
	t.state = StateOscString
}

func (t *Terminal) handleCsiEntry(b byte) {
	switch {
	case b >= '<' && b <= '?': // private parameter markers
		t.csi.Private = true
		t.state = StateCsiParam
	case b >= '0' && b <= '9':
		t.csi.accumulate(b)
		t.state = StateCsiParam
	case b == ';' || b == ':':
		// A leading separator means the first parameter was omitted
		t.csi.Params = append(t.csi.Params, 0, 0)
		t.state = StateCsiParam
	case b >= 0x20 && b <= 0x2F:
		t.csi.Intermediates = append(t.csi.Intermediates, b)
		t.state = StateCsiIntermediate
	case b >= 0x40 && b <= 0x7E:
		t.csi.Final = b
		t.executeCsi()
		t.state = StateGround
	default:
		t.state = StateGround
	}
}

func (t *Terminal) handleCsiParam(b byte) {
	switch {
	case b >= '0' && b <= '9':
		t.csi.accumulate(b)
	case b == ';' || b == ':':
		t.csi.Params = append(t.csi.Params, 0)
	case b >= 0x20 && b <= 0x2F:
		t.csi.Intermediates = append(t.csi.Intermediates, b)
		t.state = StateCsiIntermediate
	case b >= 0x40 && b <= 0x7E:
		t.csi.Final = b
		t.executeCsi()
		t.state = StateGround
	default:
		t.state = StateGround
	}
}

func (t *Terminal) handleCsiIntermediate(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2F:
		t.csi.Intermediates = append(t.csi.Intermediates, b)
	case b >= 0x40 && b <= 0x7E:
		t.csi.Final = b
		t.executeCsi()
		t.state = StateGround
	default:
		t.state = StateGround
	}
}

func (t *Terminal) handleOscString(b byte) {
	switch {
	case b == 0x07 || b == 0x9C: // BEL or ST
		t.executeOsc()
		t.state = StateGround
	case b == 0x1B:
		// ESC acts as an implicit terminator; it may be the start of
		// ESC \ (ST) or of the next sequence, so escape processing
		// resumes with this byte.
		t.executeOsc()
		t.state = StateEscape
	case b == ';' && !t.oscNumberDone:
		t.oscNumberDone = true
	case b >= '0' && b <= '9' && !t.oscNumberDone:
		t.oscNumber = t.oscNumber*10 + int(b-'0')
	default:
		if b >= 0x20 {
			t.oscData = append(t.oscData, b)
		}
	}
}

func (t *Terminal) startUtf8(b byte, continuations int) {
	t.utf8Buf = append(t.utf8Buf[:0], b)
	t.utf8Remaining = continuations
	t.state = StateUtf8
}

func (t *Terminal) handleUtf8(b byte) {
	if b&0xC0 != 0x80 {
		// Invalid continuation: abandon the buffered sequence without
		// emitting a replacement glyph, then let the offending byte take
		// its normal ground-state effect.
		t.utf8Buf = t.utf8Buf[:0]
		t.utf8Remaining = 0
		t.state = StateGround
		t.processByte(b)
		return
	}
	t.utf8Buf = append(t.utf8Buf, b)
	t.utf8Remaining--
	if t.utf8Remaining == 0 {
		if r, _ := utf8.DecodeRune(t.utf8Buf); r != utf8.RuneError {
			t.printRune(r)
		}
		t.utf8Buf = t.utf8Buf[:0]
		t.state = StateGround
	}
}

// DCS payloads are recognized but never interpreted; these states exist
// only to resynchronize the parser on the string terminator.
func (t *Terminal) handleDcsEntry(b byte) {
	switch {
	case (b >= '0' && b <= '9') || b == ';':
		t.state = StateDcsParam
	case b == 0x1B:
		t.state = StateEscape
	case b >= 0x40 && b <= 0x7E:
		t.state = StateDcsPassthrough
	default:
		t.state = StateGround
	}
}

func (t *Terminal) handleDcsParam(b byte) {
	switch {
	case b == 0x1B:
		t.state = StateEscape
	case b >= 0x40 && b <= 0x7E:
		t.state = StateDcsPassthrough
	}
}

func (t *Terminal) handleDcsPassthrough(b byte) {
	switch b {
	case 0x1B:
		t.state = StateEscape
	case 0x9C:
		t.state = StateGround
	}
}
