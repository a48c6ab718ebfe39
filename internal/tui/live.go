package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/modharm/internal/config"
	"github.com/san-kum/modharm/internal/render"
	"github.com/san-kum/modharm/internal/sequence"
	"github.com/san-kum/modharm/internal/synth"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

// liveModel animates the current partial bank inside the TUI. Speed edits
// are spring-smoothed so the frame cadence ramps to its new target instead
// of jumping.
type liveModel struct {
	base    uint64
	modulus uint64
	mode    render.Mode
	width   int
	height  int

	seq      sequence.Sequence
	partials *synth.PartialSet

	t       float64 // animation clock, seconds
	running bool

	intervalMs float64 // smoothed cadence actually used for ticks
	intervalV  float64
	targetMs   float64
	spring     harmonica.Spring

	status string
}

func newLiveModel(cfg *config.Config) (liveModel, error) {
	seq, err := sequence.Generate(cfg.Base, cfg.Modulus, cfg.MaxSequence)
	if err != nil {
		return liveModel{}, err
	}
	return liveModel{
		base:       cfg.Base,
		modulus:    cfg.Modulus,
		mode:       render.Mode(cfg.Mode),
		width:      cfg.Width,
		height:     cfg.Height,
		seq:        seq,
		partials:   synth.Synthesize(seq, cfg.MaxPartials),
		running:    true,
		intervalMs: float64(cfg.IntervalMs),
		targetMs:   float64(cfg.IntervalMs),
		spring:     harmonica.NewSpring(harmonica.FPS(60), 6.0, 0.8),
	}, nil
}

func (m liveModel) Init() tea.Cmd { return m.tick() }

func (m liveModel) tick() tea.Cmd {
	return tea.Tick(time.Duration(m.intervalMs)*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m liveModel) Update(msg tea.Msg) (liveModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.intervalMs, m.intervalV = m.spring.Update(m.intervalMs, m.intervalV, m.targetMs)
		if m.intervalMs < config.MinIntervalMs {
			m.intervalMs = config.MinIntervalMs
		}
		if m.running {
			m.t += m.intervalMs / 1000.0
		}
		return m, m.tick()
	}
	return m, nil
}

func (m liveModel) handleKey(msg tea.KeyMsg) (liveModel, tea.Cmd) {
	switch msg.String() {
	case " ":
		m.running = !m.running
	case "1", "2", "3":
		m.mode = render.Mode(msg.String()[0] - '0')
		m.status = ""
	case "+", "=":
		m.setSpeed(m.targetMs - 10)
	case "-", "_":
		m.setSpeed(m.targetMs + 10)
	case "]":
		m.regenerate(m.base+1, m.modulus)
	case "[":
		if m.base > 0 {
			m.regenerate(m.base-1, m.modulus)
		}
	case "}":
		m.regenerate(m.base, m.modulus+1)
	case "{":
		if m.modulus > 1 {
			m.regenerate(m.base, m.modulus-1)
		}
	}
	return m, nil
}

func (m *liveModel) setSpeed(ms float64) {
	if ms < config.MinIntervalMs {
		ms = config.MinIntervalMs
	}
	if ms > config.MaxIntervalMs {
		ms = config.MaxIntervalMs
	}
	m.targetMs = ms
}

// regenerate swaps the sequence and partials in place; the animation clock
// keeps running so the visual phase stays continuous across edits.
func (m *liveModel) regenerate(base, modulus uint64) {
	seq, err := sequence.Generate(base, modulus, sequence.DefaultMaxLen)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.base, m.modulus = base, modulus
	m.seq = seq
	m.partials = synth.Synthesize(seq, synth.DefaultMaxPartials)
	m.status = ""
}

func (m liveModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("MODHARM") + "  ")
	b.WriteString(labelStyle.Render("base ") + valueStyle.Render(fmt.Sprintf("%d", m.base)))
	b.WriteString(labelStyle.Render("  modulus ") + valueStyle.Render(fmt.Sprintf("%d", m.modulus)))
	b.WriteString(labelStyle.Render("  period ") + valueStyle.Render(fmt.Sprintf("%d", len(m.seq))))
	b.WriteString(labelStyle.Render("  speed ") + valueStyle.Render(fmt.Sprintf("%.0fms", m.targetMs)))
	if !m.running {
		b.WriteString("  " + headerStyle.Render("PAUSED"))
	}
	b.WriteString("\n")

	frame := render.ForMode(m.mode).Render(m.partials, m.width, m.height, m.t)
	b.WriteString(canvasStyle.Render(frame) + "\n")

	if len(m.seq) > 1 {
		data := make([]float64, len(m.seq))
		for i, v := range m.seq {
			data[i] = float64(v)
		}
		if len(data) > 60 {
			data = data[:60]
		}
		chart := asciigraph.Plot(data, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("orbit"))
		b.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(helpStyle.Render("1/2/3 mode  +/- speed  [ ] base  { } modulus  space pause  esc back  q quit"))
	return b.String()
}
