package emulator

// TerminalEvent is a host-visible side effect produced while processing
// output. Events are queued in FIFO order and drained once via TakeEvents.
type TerminalEvent interface {
	terminalEvent()
}

// TitleChangedEvent reports a new window title (OSC 0 or 2)
type TitleChangedEvent struct {
	Title string
}

// IconNameChangedEvent reports a new icon name (OSC 0 or 1)
type IconNameChangedEvent struct {
	Name string
}

// BellEvent reports BEL
type BellEvent struct{}

// ClipboardSetEvent is an OSC 52 clipboard write request. Data is still
// base64-encoded as it arrived on the wire.
type ClipboardSetEvent struct {
	Clipboard string
	Data      string
}

// HyperlinkEvent reports an OSC 8 hyperlink. An empty URL closes the
// currently active hyperlink.
type HyperlinkEvent struct {
	URL string
	ID  string
}

// ColorQueryEvent asks the host to report a palette color (OSC 4 ... ;?).
// The reply is ColorQueryReport(Index).
type ColorQueryEvent struct {
	Index uint8
}

// CursorPositionReportEvent asks the host to write CursorPositionReport()
// back to the application (DSR 6)
type CursorPositionReportEvent struct{}

// DeviceAttributesEvent asks the host to write DeviceAttributes() back to
// the application (primary DA)
type DeviceAttributesEvent struct{}

// ResizeRequestEvent is a window-manipulation resize request (CSI 8 ; r ; c t)
type ResizeRequestEvent struct {
	Cols int
	Rows int
}

func (TitleChangedEvent) terminalEvent()         {}
func (IconNameChangedEvent) terminalEvent()      {}
func (BellEvent) terminalEvent()                 {}
func (ClipboardSetEvent) terminalEvent()         {}
func (HyperlinkEvent) terminalEvent()            {}
func (ColorQueryEvent) terminalEvent()           {}
func (CursorPositionReportEvent) terminalEvent() {}
func (DeviceAttributesEvent) terminalEvent()     {}
func (ResizeRequestEvent) terminalEvent()        {}
