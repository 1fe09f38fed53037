package links

import (
	"os"
	"strings"
)

// HyperlinkState tracks the active OSC 8 hyperlink while terminal output
// is being processed. Cells printed between an opening and closing OSC 8
// belong to the link that was active when they were written.
type HyperlinkState struct {
	url  string
	id   string
	byID map[string]string
}

// NewHyperlinkState creates an empty hyperlink tracker
func NewHyperlinkState() *HyperlinkState {
	return &HyperlinkState{byID: make(map[string]string)}
}

// SetHyperlink opens a hyperlink, or closes the active one when url is
// empty. Links carrying an id are remembered so later fragments with the
// same id resolve to the same destination.
func (h *HyperlinkState) SetHyperlink(id, url string) {
	if url == "" {
		h.url = ""
		h.id = ""
		return
	}
	h.url = url
	h.id = id
	if id != "" {
		h.byID[id] = url
	}
}

// IsActive reports whether a hyperlink is currently open
func (h *HyperlinkState) IsActive() bool {
	return h.url != ""
}

// CurrentURL returns the active hyperlink URL, or empty
func (h *HyperlinkState) CurrentURL() string {
	return h.url
}

// CurrentID returns the active hyperlink id, or empty
func (h *HyperlinkState) CurrentID() string {
	return h.id
}

// URLByID resolves a previously seen link id
func (h *HyperlinkState) URLByID(id string) (string, bool) {
	url, ok := h.byID[id]
	return url, ok
}

// Clear closes the active link and forgets all remembered ids
func (h *HyperlinkState) Clear() {
	h.url = ""
	h.id = ""
	h.byID = make(map[string]string)
}

// ParseParams extracts the id from an OSC 8 parameter list of
// colon-separated key=value pairs
func ParseParams(params string) (id string) {
	for _, param := range strings.Split(params, ":") {
		if v, ok := strings.CutPrefix(param, "id="); ok {
			return v
		}
	}
	return ""
}

func defaultExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
