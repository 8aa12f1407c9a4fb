package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/galaxy/internal/config"
	"github.com/san-kum/galaxy/internal/metrics"
	"github.com/san-kum/galaxy/internal/sim"
)

const (
	defaultWidth    = 60
	defaultHeight   = 22
	statsWidth      = 46
	historyCapacity = 300
)

type TickMsg time.Time

// Model drives a session from Bubble Tea ticks and renders it with its HUD.
type Model struct {
	session  *sim.Session
	canvas   *Canvas
	interval time.Duration
	theme    Theme
	logger   *log.Logger

	spring harmonica.Spring
	fps    float64
	fpsVel float64

	history []float64
	notice  string

	snapshot func(frame uint64, canvas *Canvas) (string, error)
}

// NewModel wraps a session whose render target is canvas. fps sets the tick
// rate; zero means sim.DefaultFPS.
func NewModel(session *sim.Session, canvas *Canvas, fps int, theme string, logger *log.Logger) Model {
	if fps <= 0 {
		fps = sim.DefaultFPS
	}
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		session:  session,
		canvas:   canvas,
		interval: time.Second / time.Duration(fps),
		theme:    GetTheme(theme),
		logger:   logger.WithPrefix("tui"),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		history:  make([]float64, 0, historyCapacity),
	}
}

// WithSnapshot enables the s key. fn saves the current frame and returns
// where it went.
func (m Model) WithSnapshot(fn func(frame uint64, canvas *Canvas) (string, error)) Model {
	m.snapshot = fn
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the session once per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.control(m.session.Toggle())
		case "up", "k", "+":
			m.resize(config.NextCount(m.session.Pending()))
		case "down", "j", "-":
			m.resize(config.PrevCount(m.session.Pending()))
		case "r":
			m.control(m.session.Restart())
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "s":
			m.save()
		}
	case tea.WindowSizeMsg:
		w := msg.Width - statsWidth - 6
		h := msg.Height - 4
		if w > 10 && h > 5 {
			m.canvas.Resize(w, h)
		}
	case TickMsg:
		m.step()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) control(err error) {
	if err != nil {
		m.notice = err.Error()
		m.logger.Warn("control", "err", err)
		return
	}
	m.notice = ""
}

// resize restarts with n particles. At either end of the allowed counts n
// equals the pending count and the run is left alone.
func (m *Model) resize(n int) {
	if n == m.session.Pending() {
		return
	}
	m.control(m.session.Resize(n))
}

func (m *Model) save() {
	if m.snapshot == nil {
		return
	}
	path, err := m.snapshot(m.session.Frames(), m.canvas)
	if err != nil {
		m.control(err)
		return
	}
	m.notice = "saved " + path
	m.logger.Info("snapshot", "path", path)
}

func (m *Model) step() {
	restarts := m.session.Restarts()
	m.session.Frame()
	if m.session.Restarts() != restarts {
		m.history = m.history[:0]
	}

	m.history = append(m.history, float64(m.session.System().Live()))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
	m.fps, m.fpsVel = m.spring.Update(m.fps, m.fpsVel, float64(m.session.FPS()))
}

// View renders the TUI interface.
func (m Model) View() string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border)
	canvasView := border.Render(m.canvas.Render())

	statsView := lipgloss.NewStyle().
		Padding(0, 2).
		Width(statsWidth).
		Render(m.stats())

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func (m Model) stats() string {
	title := lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true).MarginBottom(1)
	label := lipgloss.NewStyle().Foreground(m.theme.Label).Width(14)
	value := lipgloss.NewStyle().Foreground(m.theme.Value)
	graph := lipgloss.NewStyle().Foreground(m.theme.Graph).MarginTop(1)
	help := lipgloss.NewStyle().Foreground(m.theme.Label).Italic(true).MarginTop(1)

	var s strings.Builder
	s.WriteString(title.Render("GALAXY") + "\n")
	s.WriteString(m.status() + "\n\n")

	snap := metrics.Take(m.session.System())
	rows := []struct{ k, v string }{
		{"particles", fmt.Sprintf("%d / %d", snap.Live, snap.Total)},
		{"next run", fmt.Sprintf("%d", m.session.Pending())},
		{"total mass", fmt.Sprintf("%.0f", snap.Mass)},
		{"max mass", fmt.Sprintf("%.0f", snap.MaxMass)},
		{"momentum", fmt.Sprintf("%.3e", snap.Momentum)},
		{"fps", fmt.Sprintf("%.0f", m.fps)},
		{"frame", fmt.Sprintf("%d", m.session.Frames())},
	}
	for _, r := range rows {
		s.WriteString(label.Render(r.k) + value.Render(r.v) + "\n")
	}

	if len(m.history) > 1 {
		plot := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(statsWidth-16),
			asciigraph.Caption("live particles"),
		)
		s.WriteString(graph.Render(plot) + "\n")
	}

	if m.notice != "" {
		s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Warning).Render(m.notice) + "\n")
	}

	s.WriteString(help.Render("space pause · ↑/↓ particles · r restart · t theme · s save · q quit"))
	return s.String()
}

func (m Model) status() string {
	st := m.session.State()
	color := m.theme.Running
	if st != sim.Running {
		color = m.theme.Paused
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(strings.ToUpper(st.String()))
}

// NewProgram builds the Bubble Tea program for the model on the alternate
// screen.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}
