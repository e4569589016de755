package ui

import tea "github.com/charmbracelet/bubbletea"

type EventKind int

const (
	EventNone EventKind = iota
	EventTimeout
	EventKey
	EventInterrupt
)

// Event is what one wait on the terminal produced.
type Event struct {
	Kind EventKind
	Key  string
}

// refreshMsg fires when a refresh interval elapses. Ticks from an older
// generation were overtaken by a keypress and are stale.
type refreshMsg struct{ gen int }

// classify reduces a bubbletea message to an Event. gen is the current
// refresh generation.
func classify(msg tea.Msg, gen int) Event {
	switch msg := msg.(type) {
	case refreshMsg:
		if msg.gen == gen {
			return Event{Kind: EventTimeout}
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return Event{Kind: EventInterrupt}
		}
		return Event{Kind: EventKey, Key: msg.String()}
	}
	return Event{Kind: EventNone}
}
