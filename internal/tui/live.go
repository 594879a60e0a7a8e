package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/springbox/internal/config"
	"github.com/san-kum/springbox/internal/scenario"
	"github.com/san-kum/springbox/internal/sim"
	"github.com/san-kum/springbox/internal/world"
)

const (
	canvasW = 80
	canvasH = 24
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	grabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

// Model drives the live terminal view. The simulated window keeps the
// scenario package's fixed pixel dimensions; terminal cells are only a
// viewport onto it, and the mouse is mapped back into window pixels before
// it reaches the simulation.
type Model struct {
	cfg     *config.Config
	st      world.State
	t       float64
	paused  bool
	tracked bool

	pointerX, pointerY int
	pointerDown        bool

	canvas   *Canvas
	lastTick time.Time
}

func NewModel(cfg *config.Config) Model {
	return Model{
		cfg:      cfg,
		st:       cfg.NewState(),
		pointerX: scenario.WindowW / 2,
		pointerY: scenario.WindowH / 2,
		canvas:   NewCanvas(canvasW, canvasH),
		lastTick: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.st = m.cfg.NewState()
			m.t = 0
		}
	case tea.MouseMsg:
		m.pointerX = msg.X * scenario.WindowW / canvasW
		m.pointerY = msg.Y * scenario.WindowH / canvasH
		m.tracked = true
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.pointerDown = true
			}
		case tea.MouseActionRelease:
			m.pointerDown = false
		}
	case TickMsg:
		elapsed := time.Since(m.lastTick).Seconds()
		m.lastTick = time.Now()
		if !m.paused {
			in := world.Input{
				WindowW:     scenario.WindowW,
				WindowH:     scenario.WindowH,
				PointerX:    m.pointerX,
				PointerY:    m.pointerY,
				PointerDown: m.pointerDown,
				Elapsed:     elapsed,
			}
			m.st = sim.Advance(m.st, in, m.cfg.MaxElapsed)
			m.t += elapsed
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// toCanvas maps room-centered, y-up coordinates into canvas sub-pixels.
func toCanvas(x, y float64) (int, int) {
	sx := (x + scenario.WindowW/2) * float64(canvasW*2) / scenario.WindowW
	sy := (scenario.WindowH/2 - y) * float64(canvasH*4) / scenario.WindowH
	return int(sx), int(sy)
}

func (m Model) View() string {
	m.canvas.Clear()

	r := m.st.Room
	x0, y0 := toCanvas(-r.W/2, r.H/2)
	x1, y1 := toCanvas(r.W/2, -r.H/2)
	m.canvas.Rect(x0, y0, x1, y1)

	bx, by := toCanvas(m.st.Ball.Pos.X, m.st.Ball.Pos.Y)
	br := int(m.st.Ball.Radius * float64(canvasW*2) / scenario.WindowW)
	if br < 1 {
		br = 1
	}
	m.canvas.FillCircle(bx, by, br)

	if m.tracked {
		hx, hy := toCanvas(m.st.Hand.Pos.X, m.st.Hand.Pos.Y)
		m.canvas.Cross(hx, hy, 2)
	}

	header := headerStyle.Render("springbox") + labelStyle.Render(fmt.Sprintf("  t=%.1fs", m.t))
	if m.paused {
		header += grabStyle.Render("  [paused]")
	}

	status := labelStyle.Render("ball ") +
		valueStyle.Render(fmt.Sprintf("(%6.1f, %6.1f)", m.st.Ball.Pos.X, m.st.Ball.Pos.Y)) +
		labelStyle.Render("  vel ") +
		valueStyle.Render(fmt.Sprintf("%6.1f", m.st.Ball.Vel.Norm()))
	if m.st.Hand.Grabbing {
		status += grabStyle.Render("  [grabbing]")
	}

	help := helpStyle.Render("drag with the mouse to grab · space pause · r reset · q quit")

	return header + "\n" + canvasStyle.Render(m.canvas.String()) + "\n" + status + "\n" + help + "\n"
}

// Run starts the live view. Mouse motion reporting is required for the
// hand to follow the pointer while the button is up.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
