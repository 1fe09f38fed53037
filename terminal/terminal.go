// Package terminal ties an emulator instance to hyperlink tracking and
// link detection, and manages collections of terminal sessions.
package terminal

import (
	"github.com/google/uuid"

	"github.com/javanhut/RookTerm/emulator"
	"github.com/javanhut/RookTerm/links"
)

// Terminal is a single terminal session: an emulator plus the link state
// that accumulates as output flows through it.
type Terminal struct {
	// ID uniquely identifies the session
	ID string

	Emulator   *emulator.Terminal
	Links      *links.Detector
	Hyperlinks *links.HyperlinkState

	title  string
	active bool
}

// New creates a terminal session with the given dimensions
func New(cols, rows int) *Terminal {
	return &Terminal{
		ID:         uuid.NewString(),
		Emulator:   emulator.New(cols, rows),
		Links:      links.NewDetector(),
		Hyperlinks: links.NewHyperlinkState(),
	}
}

// Process feeds output bytes through the emulator and returns the events
// it produced. Title changes and hyperlinks are tracked on the session
// before the events are handed back.
func (t *Terminal) Process(data []byte) []emulator.TerminalEvent {
	t.Emulator.Process(data)
	events := t.Emulator.TakeEvents()
	for _, ev := range events {
		switch e := ev.(type) {
		case emulator.TitleChangedEvent:
			t.title = e.Title
		case emulator.HyperlinkEvent:
			t.Hyperlinks.SetHyperlink(e.ID, e.URL)
		}
	}
	return events
}

// Title returns the session title set via OSC, or a default
func (t *Terminal) Title() string {
	if t.title == "" {
		return "Terminal"
	}
	return t.title
}

// Resize changes the terminal dimensions
func (t *Terminal) Resize(cols, rows int) {
	t.Emulator.Resize(cols, rows)
}

// Reset restores the emulator to its initial state and clears link state
func (t *Terminal) Reset() {
	t.Emulator.Reset()
	t.Hyperlinks.Clear()
	t.title = ""
}

// Active reports whether this session currently has focus
func (t *Terminal) Active() bool {
	return t.active
}

// SetActive marks or unmarks the session as focused
func (t *Terminal) SetActive(active bool) {
	t.active = active
}

// DetectLinks scans a line of this terminal's output for links
func (t *Terminal) DetectLinks(text string, row int) []links.Link {
	return t.Links.DetectLinks(text, row)
}
