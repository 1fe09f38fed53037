package emulator

import (
	"strconv"
	"strings"
)

// executeOsc dispatches a completed operating system command. Unknown
// numbers have already been parsed cleanly and are simply discarded.
func (t *Terminal) executeOsc() {
	data := string(t.oscData)

	switch t.oscNumber {
	case 0: // icon name and window title
		t.emit(TitleChangedEvent{Title: data})
		t.emit(IconNameChangedEvent{Name: data})
	case 1: // icon name
		t.emit(IconNameChangedEvent{Name: data})
	case 2: // window title
		t.emit(TitleChangedEvent{Title: data})
	case 4: // palette color set/query: "index;spec" where spec "?" queries
		parts := strings.SplitN(data, ";", 2)
		if len(parts) == 2 && parts[1] == "?" {
			if index, err := strconv.Atoi(parts[0]); err == nil && index >= 0 && index <= 255 {
				t.emit(ColorQueryEvent{Index: uint8(index)})
			}
		}
	case 8: // hyperlink: "params;url", empty url closes the active link
		params, url, _ := strings.Cut(data, ";")
		id := ""
		for _, param := range strings.Split(params, ":") {
			if v, ok := strings.CutPrefix(param, "id="); ok {
				id = v
				break
			}
		}
		t.emit(HyperlinkEvent{URL: url, ID: id})
	case 52: // clipboard: "clipboard-name;base64-data"
		if clipboard, data, ok := strings.Cut(data, ";"); ok {
			t.emit(ClipboardSetEvent{Clipboard: clipboard, Data: data})
		}
	}
}
