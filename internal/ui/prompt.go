package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/seclab/labstatus/internal/model"
)

const (
	maxLabelLen = 32
	maxColorLen = 16
)

func newInput(prompt, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = limit
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return ti
}

func (m *Model) startPrompt() {
	m.mode = modeLabel
	m.customLabel = ""
	m.input = newInput("Status: ", "label", maxLabelLen)
}

func (m *Model) endPrompt() {
	m.mode = modeBanner
	m.customLabel = ""
	m.input.Blur()
}

func (m *Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// refresh ticks keep their schedule but do not fetch mid-entry
		if r, isRefresh := msg.(refreshMsg); isRefresh && r.gen == m.gen {
			return m, m.scheduleRefresh()
		}
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.endPrompt()
		m.s.Logger.Info("interrupted, shutting down")
		return m, tea.Quit
	case tea.KeyEsc:
		m.s.Logger.Info("custom status cancelled")
		m.endPrompt()
		return m, nil
	case tea.KeyEnter:
		return m, m.advancePrompt()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) advancePrompt() tea.Cmd {
	value, ok := field(m.input.Value())
	if !ok {
		m.s.Logger.Info("custom status aborted, empty or invalid field")
		m.endPrompt()
		return nil
	}

	if m.mode == modeLabel {
		m.customLabel = value
		m.mode = modeColor
		m.input = newInput("Color: ", "purple or #rrggbb", maxColorLen)
		return nil
	}

	label := model.Status(m.customLabel)
	m.endPrompt()
	m.busy = true
	m.s.Logger.Info("custom status entered", "status", string(label), "color", value)
	return m.submitCmd(label, value)
}

func field(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}
