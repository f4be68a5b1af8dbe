package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/chaoswatch/internal/anim"
	"github.com/san-kum/chaoswatch/internal/overlay"
	"github.com/san-kum/chaoswatch/internal/raster"
	"github.com/san-kum/chaoswatch/internal/sim"
)

const (
	canvasWidth     = 50
	canvasHeight    = 25
	historyCapacity = 60
)

type TickMsg time.Time

// Model drives a Simulator from Bubble Tea ticks.
type Model struct {
	cfg        sim.Config
	sim        *sim.Simulator
	face       *overlay.Face
	delay      time.Duration
	canvas     *Canvas
	frame      *raster.FrameBuffer
	xHistory   []float64
	running    bool
	theme      int
	recorder   *anim.Assembler
	recordPath string
	status     string
}

// NewModel builds a viewer. face may be nil to show the bare trajectory.
func NewModel(cfg sim.Config, face *overlay.Face, delay time.Duration, recordPath string) (Model, error) {
	s, err := sim.New(cfg)
	if err != nil {
		return Model{}, err
	}
	if delay <= 0 {
		delay = anim.DefaultDelay
	}
	return Model{
		cfg:        cfg,
		sim:        s,
		face:       face,
		delay:      delay,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		xHistory:   make([]float64, 0, historyCapacity),
		running:    true,
		recordPath: recordPath,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.advance()
			}
		case "r":
			m.reset()
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "g":
			m.toggleRecording()
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	fb := m.sim.RenderFrame()
	if m.face != nil {
		m.face.Draw(fb)
	}
	m.frame = fb
	m.canvas.Blit(fb)

	x := m.sim.State()
	m.xHistory = append(m.xHistory, x[0])
	if len(m.xHistory) > historyCapacity {
		m.xHistory = m.xHistory[1:]
	}

	if m.recorder != nil {
		if err := m.recorder.AddFrame(fb); err != nil {
			m.status = err.Error()
		}
	}
}

func (m *Model) reset() {
	s, err := sim.New(m.cfg)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.sim = s
	m.frame = nil
	m.canvas.Clear()
	m.xHistory = m.xHistory[:0]
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = anim.New(m.delay)
		m.status = "recording"
		return
	}
	rec := m.recorder
	m.recorder = nil
	if rec.Len() == 0 {
		m.status = "nothing recorded"
		return
	}
	if err := rec.Save(m.recordPath); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("saved %d frames to %s", rec.Len(), m.recordPath)
}

// Frame returns the last rendered frame, or nil before the first tick.
func (m Model) Frame() *raster.FrameBuffer { return m.frame }

// View renders the TUI interface.
func (m Model) View() string {
	th := Themes[m.theme]
	canvasStyle := lipgloss.NewStyle().Foreground(th.Ink).Padding(1, 2)
	statsStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(th.Muted).Padding(1, 2).Width(42)
	headerStyle := lipgloss.NewStyle().Foreground(th.Accent).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(th.Muted).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(th.Text)
	helpStyle := lipgloss.NewStyle().Foreground(th.Muted).MarginTop(1)

	var s strings.Builder
	s.WriteString(headerStyle.Render("LORENZ") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.recorder != nil {
		status += lipgloss.NewStyle().Foreground(th.Alert).Render(fmt.Sprintf("  REC %d", m.recorder.Len()))
	}
	s.WriteString(status + "\n\n")

	if len(m.xHistory) > 1 {
		chart := asciigraph.Plot(m.xHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("x(t)"))
		s.WriteString(lipgloss.NewStyle().Foreground(th.Accent).Render(chart) + "\n\n")
	}

	x := m.sim.State()
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", m.sim.Frame()))
	row("Angle", fmt.Sprintf("%.1f°", m.sim.Angle()*180/math.Pi))
	row("Points", fmt.Sprintf("%d", len(m.sim.Points())))
	row("x", fmt.Sprintf("%.3f", x[0]))
	row("y", fmt.Sprintf("%.3f", x[1]))
	row("z", fmt.Sprintf("%.3f", x[2]))
	row("Theme", th.Name)

	if m.status != "" {
		s.WriteString("\n" + valueStyle.Render(m.status) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause N:Step R:Reset\nT:Theme  G:Record Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.canvas.String()), statsStyle.Render(s.String()))
}
