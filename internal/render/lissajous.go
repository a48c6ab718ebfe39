package render

import (
	"math"

	"github.com/san-kum/modharm/internal/synth"
)

// X and Y use slightly different frequency and phase scalings so the
// figure folds instead of collapsing to an ellipse.
const (
	lissFreqSkew  = 1.5
	lissOmegaSkew = 0.75
	lissFill      = 0.9
)

// Lissajous samples a closed parametric curve driven by the partial bank
// and plots it point-by-point into a braille sub-pixel canvas.
type Lissajous struct{}

func (Lissajous) Name() string { return ModeLissajous.String() }

func (Lissajous) Render(p *synth.PartialSet, w, h int, t float64) string {
	c := newCanvas(w, h)
	pw, ph := float64(w*2), float64(h*4)
	points := 3 * max(w, h)

	for i := 0; i < points; i++ {
		s := float64(i) / float64(points)
		var xs, ys float64
		for k := 0; k < p.Len(); k++ {
			xs += p.Amp[k] * math.Sin(2*math.Pi*p.Freq[k]*s+p.Omega[k]*t+p.Phase[k])
			ys += p.Amp[k] * math.Cos(2*math.Pi*p.Freq[k]*lissFreqSkew*s+p.Omega[k]*lissOmegaSkew*t+p.Phase[k]*0.5)
		}
		x := math.Tanh(xs)
		y := math.Tanh(ys)
		px := int(pw/2 + x*lissFill*pw/2)
		py := int(ph/2 - y*lissFill*ph/2)
		c.set(px, py)
	}

	return joinFrame(c.rows(), footer(ModeLissajous.String(), w, h, p.Len()))
}
