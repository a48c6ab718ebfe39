// Package render turns a bank of harmonic partials into terminal frames.
//
// Every renderer is a pure function of (partials, width, height, elapsed
// time): no state survives between frames, so identical inputs produce
// byte-identical output. A frame is height rows of exactly width cells,
// followed by a one-line status footer.
package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/modharm/internal/synth"
)

// Mode selects one of the interchangeable renderers.
type Mode int

const (
	ModeOscilloscope Mode = iota + 1
	ModeLissajous
	ModePlasma
)

func (m Mode) String() string {
	switch m {
	case ModeOscilloscope:
		return "oscilloscope"
	case ModeLissajous:
		return "lissajous"
	case ModePlasma:
		return "plasma"
	}
	return "unknown"
}

// Valid reports whether m names a renderer.
func (m Mode) Valid() bool {
	return m >= ModeOscilloscope && m <= ModePlasma
}

// Renderer produces one frame for a partial bank at elapsed time t seconds.
// Implementations assume p.Len() >= 1; callers gate on an empty bank.
type Renderer interface {
	Name() string
	Render(p *synth.PartialSet, w, h int, t float64) string
}

// ForMode returns the renderer for m, defaulting to the oscilloscope.
func ForMode(m Mode) Renderer {
	switch m {
	case ModeLissajous:
		return Lissajous{}
	case ModePlasma:
		return Plasma{}
	default:
		return Oscilloscope{}
	}
}

// Modes lists the selectable renderers in menu order.
func Modes() []Mode {
	return []Mode{ModeOscilloscope, ModeLissajous, ModePlasma}
}

func footer(name string, w, h, partials int) string {
	return fmt.Sprintf("%s  %dx%d  partials=%d", name, w, h, partials)
}

func joinFrame(rows []string, foot string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString(foot)
	return b.String()
}
