package render

import (
	"math"
	"strings"

	"github.com/san-kum/modharm/internal/synth"
)

// brightnessRamp runs from empty to solid; 70 distinct levels.
const brightnessRamp = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

// Plasma fills every cell with a brightness level sampled from a bounded
// field of sine/cosine pairs over the partial bank, producing a dense
// full-canvas texture.
type Plasma struct{}

func (Plasma) Name() string { return ModePlasma.String() }

func (Plasma) Render(p *synth.PartialSet, w, h int, t float64) string {
	ramp := []rune(brightnessRamp)
	rows := make([]string, h)
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.Reset()
		b.Grow(w)
		ny := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			nx := float64(x) / float64(w)
			sum := 0.0
			for k := 0; k < p.Len(); k++ {
				sum += p.Amp[k] * 0.5 * (math.Sin(2*math.Pi*p.Freq[k]*nx+p.Omega[k]*t+p.Phase[k]) +
					math.Cos(2*math.Pi*p.Freq[k]*ny-p.Omega[k]*t+p.Phase[k]))
			}
			bright := (math.Tanh(sum) + 1) / 2
			idx := int(bright * float64(len(ramp)-1))
			b.WriteRune(ramp[idx])
		}
		rows[y] = b.String()
	}
	return joinFrame(rows, footer(ModePlasma.String(), w, h, p.Len()))
}
