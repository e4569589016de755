package ui

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seclab/labstatus/internal/banner"
	"github.com/seclab/labstatus/internal/model"
	"github.com/seclab/labstatus/internal/statusapi"
)

const (
	// DebounceWindow is how close together two actions may be before the
	// second is dropped.
	DebounceWindow = 100 * time.Millisecond
	flashDuration  = 150 * time.Millisecond
)

// StatusClient reads and changes the remote lab status.
type StatusClient interface {
	Fetch() model.Status
	Submit(label model.Status, color string) statusapi.SubmitResult
}

// LogChecker keeps the log file bounded. It runs before every action.
type LogChecker interface {
	Check() (truncated bool, err error)
}

type TickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// Session is the process-wide state the loop and its handlers share.
type Session struct {
	Client   StatusClient
	Banners  *banner.Renderer
	Log      LogChecker
	Logger   *slog.Logger
	Interval time.Duration
	Legend   string

	// Bell receives the audible failure signal. Defaults to stdout, where
	// the program renders.
	Bell io.Writer
	Now  func() time.Time
	Tick TickFunc

	lastAction time.Time
}

type mode int

const (
	modeBanner mode = iota
	modeLabel
	modeColor
)

type (
	fetchedMsg struct{ status model.Status }
	actionMsg  struct {
		target model.Status
		color  string
		result statusapi.SubmitResult
	}
	promptMsg    struct{}
	noActionMsg  struct{ current model.Status }
	flashDoneMsg struct{}
)

// Model is the input/render loop.
type Model struct {
	s *Session

	status model.Status
	color  string
	screen string
	flash  bool

	busy bool
	gen  int

	mode        mode
	input       textinput.Model
	customLabel string

	width, height int
}

func New(s *Session) *Model {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.Bell == nil {
		s.Bell = os.Stdout
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.Tick == nil {
		s.Tick = tea.Tick
	}
	return &Model{s: s}
}

// Run owns the terminal until the user interrupts. An interrupt, whether a
// ctrl+c key or SIGINT, is a clean shutdown.
func Run(s *Session) error {
	_, err := tea.NewProgram(New(s), tea.WithAltScreen()).Run()
	return shutdownErr(err)
}

func shutdownErr(err error) error {
	if errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	m.busy = true
	return tea.Batch(m.fetchCmd(), m.scheduleRefresh())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case fetchedMsg:
		m.busy = false
		m.show(msg.status, "")
		return m, nil
	case actionMsg:
		m.busy = false
		if !msg.result.OK() {
			m.s.Logger.Warn("status change failed",
				"status", string(msg.target),
				"submitted", msg.result.Submitted,
				"notified", msg.result.Notified)
			return m, m.fail()
		}
		m.show(msg.target, msg.color)
		return m, nil
	case noActionMsg:
		m.busy = false
		m.show(msg.current, "")
		if msg.current == model.StatusError {
			return m, m.fail()
		}
		return m, nil
	case promptMsg:
		m.busy = false
		m.startPrompt()
		return m, nil
	case flashDoneMsg:
		m.flash = false
		m.redraw()
		return m, nil
	}

	if m.mode != modeBanner {
		return m.updatePrompt(msg)
	}

	ev := classify(msg, m.gen)
	switch ev.Kind {
	case EventInterrupt:
		m.s.Logger.Info("interrupted, shutting down")
		return m, tea.Quit
	case EventTimeout:
		next := m.scheduleRefresh()
		if m.busy {
			return m, next
		}
		m.busy = true
		return m, tea.Batch(m.fetchCmd(), next)
	case EventKey:
		return m, m.handleKey(ev.Key)
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	m.gen++
	next := m.scheduleRefresh()

	if m.busy {
		m.s.Logger.Debug("key ignored, request in flight", "key", key)
		return next
	}
	now := m.s.Now()
	if !m.s.lastAction.IsZero() && now.Sub(m.s.lastAction) < DebounceWindow {
		m.s.Logger.Debug("key debounced", "key", key)
		return next
	}
	m.s.lastAction = now

	if m.s.Log != nil {
		truncated, err := m.s.Log.Check()
		if err != nil {
			m.s.Logger.Warn("log maintenance failed, action skipped", "err", err)
			return next
		}
		if truncated {
			m.s.Logger.Info("log file truncated")
		}
	}

	m.busy = true
	m.s.Logger.Info("key pressed", "key", key)
	return tea.Batch(m.actionCmd(key), next)
}

func (m *Model) scheduleRefresh() tea.Cmd {
	gen := m.gen
	return m.s.Tick(m.s.Interval, func(time.Time) tea.Msg {
		return refreshMsg{gen: gen}
	})
}

func (m *Model) fetchCmd() tea.Cmd {
	client := m.s.Client
	return func() tea.Msg {
		return fetchedMsg{status: client.Fetch()}
	}
}

func (m *Model) actionCmd(key string) tea.Cmd {
	client := m.s.Client
	return func() tea.Msg {
		current := client.Fetch()
		act := Decide(key, current)
		switch act.Kind {
		case ActionSubmit:
			return actionMsg{target: act.Target, result: client.Submit(act.Target, "")}
		case ActionPrompt:
			return promptMsg{}
		default:
			return noActionMsg{current: current}
		}
	}
}

func (m *Model) submitCmd(label model.Status, color string) tea.Cmd {
	client := m.s.Client
	return func() tea.Msg {
		return actionMsg{target: label, color: color, result: client.Submit(label, color)}
	}
}

// fail signals a failed action with a bell and a short inverted banner.
func (m *Model) fail() tea.Cmd {
	m.flash = true
	m.redraw()
	bell, logger := m.s.Bell, m.s.Logger
	return tea.Batch(
		func() tea.Msg {
			if _, err := bell.Write([]byte("\a")); err != nil {
				logger.Debug("bell write failed", "err", err)
			}
			return nil
		},
		m.s.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{} }),
	)
}

func (m *Model) show(s model.Status, color string) {
	if color == "" {
		color = s.Color()
	}
	if s == m.status && color == m.color && m.screen != "" {
		return
	}
	m.status, m.color = s, color
	m.redraw()
}

// redraw renders the current status. A render failure keeps the previous banner.
func (m *Model) redraw() {
	if m.status == "" {
		return
	}
	out, err := m.s.Banners.Render(m.status, m.color, m.flash)
	if err != nil {
		m.s.Logger.Warn("banner render failed", "status", string(m.status), "err", err)
		return
	}
	m.screen = out
}

func (m *Model) View() string {
	parts := []string{m.screen}
	if m.mode != modeBanner {
		parts = append(parts, "", m.input.View())
	} else if m.s.Legend != "" {
		parts = append(parts, "", m.s.Legend)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
