// Package tui provides the interactive terminal front end: a renderer menu,
// a parameter form, and the live animation view.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/modharm/internal/config"
	"github.com/san-kum/modharm/internal/render"
)

var modeInfo = map[render.Mode]string{
	render.ModeOscilloscope: "summed signal trace",
	render.ModeLissajous:    "parametric curve",
	render.ModePlasma:       "full-canvas texture",
}

const (
	stateMenu = iota
	stateConfig
	stateView
)

var fieldNames = []string{"base", "modulus", "width", "height", "interval"}

type appModel struct {
	state  int
	cursor int

	modes []render.Mode
	mode  render.Mode

	fields      map[string]string
	fieldCursor int
	editing     bool
	editBuf     string
	errLine     string

	live liveModel
}

func newApp() appModel {
	cfg := config.Default()
	return appModel{
		state: stateMenu,
		modes: render.Modes(),
		mode:  render.ModeOscilloscope,
		fields: map[string]string{
			"base":     strconv.FormatUint(cfg.Base, 10),
			"modulus":  strconv.FormatUint(cfg.Modulus, 10),
			"width":    strconv.Itoa(cfg.Width),
			"height":   strconv.Itoa(cfg.Height),
			"interval": strconv.Itoa(cfg.IntervalMs),
		},
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.state == stateView {
			var cmd tea.Cmd
			m.live, cmd = m.live.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateView:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateConfig
			return m, nil
		}
		var cmd tea.Cmd
		m.live, cmd = m.live.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.mode = m.modes[m.cursor]
		m.state = stateConfig
		m.fieldCursor = 0
		m.errLine = ""
	}
	return m, nil
}

func (m appModel) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			// Non-numeric input is discarded; the prior value stands.
			if _, err := strconv.ParseUint(m.editBuf, 10, 64); err == nil {
				m.fields[fieldNames[m.fieldCursor]] = m.editBuf
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
				m.editBuf += s
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(fieldNames)-1 {
			m.fieldCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = m.fields[fieldNames[m.fieldCursor]]
	case "s":
		return m.startView()
	}
	return m, nil
}

// startView parses the form into a Config; validation failures keep the
// form open with the prior values intact.
func (m appModel) startView() (tea.Model, tea.Cmd) {
	cfg := config.Default()
	cfg.Mode = int(m.mode)
	var err error
	if cfg.Base, err = strconv.ParseUint(m.fields["base"], 10, 64); err != nil {
		m.errLine = "base: not a number"
		return m, nil
	}
	if cfg.Modulus, err = strconv.ParseUint(m.fields["modulus"], 10, 64); err != nil {
		m.errLine = "modulus: not a number"
		return m, nil
	}
	if cfg.Width, err = strconv.Atoi(m.fields["width"]); err != nil {
		m.errLine = "width: not a number"
		return m, nil
	}
	if cfg.Height, err = strconv.Atoi(m.fields["height"]); err != nil {
		m.errLine = "height: not a number"
		return m, nil
	}
	if cfg.IntervalMs, err = strconv.Atoi(m.fields["interval"]); err != nil {
		m.errLine = "interval: not a number"
		return m, nil
	}
	if err := cfg.Validate(); err != nil {
		m.errLine = err.Error()
		return m, nil
	}
	live, err := newLiveModel(cfg)
	if err != nil {
		m.errLine = err.Error()
		return m, nil
	}
	m.live = live
	m.state = stateView
	m.errLine = ""
	return m, m.live.Init()
}

func (m appModel) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateView:
		return m.live.View()
	}
	return ""
}

func (m appModel) viewMenu() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	sel := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))

	b.WriteString("\n\n    " + h.Render("MODHARM") + "\n    " + sub.Render("modular harmonic visualizer") + "\n    " + sub.Render("───────────────────────────") + "\n\n")
	for i, mode := range m.modes {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", h.Render("▸"), sel.Render(fmt.Sprintf("%-14s", mode.String())), desc.Render(modeInfo[mode])))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", dim.Render(fmt.Sprintf("%-14s", mode.String())), dim.Render(modeInfo[mode])))
		}
	}
	b.WriteString("\n    " + dim.Render("j/k navigate  enter select  q quit") + "\n")
	return b.String()
}

func (m appModel) viewConfig() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	sel := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))

	b.WriteString("\n\n    " + h.Render(strings.ToUpper(m.mode.String())) + "\n    " + sub.Render(modeInfo[m.mode]) + "\n    " + sub.Render("───────────────────────────") + "\n\n")
	for i, name := range fieldNames {
		val := m.fields[name]
		if m.editing && i == m.fieldCursor {
			val = m.editBuf + "_"
		}
		if i == m.fieldCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", h.Render("▸"), sel.Render(fmt.Sprintf("%-10s", name)), sel.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", dim.Render(fmt.Sprintf("%-10s", name)), dim.Render(val)))
		}
	}
	if m.errLine != "" {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.errLine) + "\n")
	}
	b.WriteString("\n    " + dim.Render("j/k select  enter edit  s start  esc back") + "\n")
	return b.String()
}

// Run launches the interactive application.
func Run() error {
	_, err := tea.NewProgram(newApp(), tea.WithAltScreen()).Run()
	return err
}
