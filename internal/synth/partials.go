// Package synth maps a modular sequence onto harmonic oscillator partials.
//
// The mapping is fixed and reproducible: identical sequences always yield
// identical partial sets. Spatial frequency and angular velocity are folded
// into bounded bands via small prime moduli, the amplitude falls off
// harmonically with partial index (so the summed signal stays bounded for
// any partial count), and the initial phase spreads values over [0, 2pi).
package synth

import (
	"math"

	"github.com/san-kum/modharm/internal/sequence"
)

// DefaultMaxPartials caps how many sequence values feed the oscillator bank.
const DefaultMaxPartials = 24

// MinPartials is the floor for non-empty sequences; shorter orbits wrap
// cyclically so every renderer still has enough partials to layer.
const MinPartials = 3

// A PartialSet holds parallel oscillator parameters of equal length.
// It is immutable after Synthesize returns; regeneration builds a new set.
type PartialSet struct {
	Freq  []float64 // spatial frequency, ~[0.62, 2.54]
	Omega []float64 // angular velocity, ~[0.81, 2.77]
	Amp   []float64 // strictly decreasing with index
	Phase []float64 // radians in [0, 2pi)
}

// Len returns the number of partials.
func (p *PartialSet) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Freq)
}

// Synthesize derives a PartialSet from seq. k = min(len(seq), maxPartials)
// with a floor of MinPartials when seq is non-empty; values wrap when the
// orbit is shorter than the floor. maxPartials <= 0 selects
// DefaultMaxPartials. An empty sequence yields an empty set.
func Synthesize(seq sequence.Sequence, maxPartials int) *PartialSet {
	if maxPartials <= 0 {
		maxPartials = DefaultMaxPartials
	}
	k := len(seq)
	if k > maxPartials {
		k = maxPartials
	}
	if k > 0 && k < MinPartials {
		k = MinPartials
	}

	p := &PartialSet{
		Freq:  make([]float64, k),
		Omega: make([]float64, k),
		Amp:   make([]float64, k),
		Phase: make([]float64, k),
	}
	for i := 0; i < k; i++ {
		v := seq[i%len(seq)]
		p.Freq[i] = 0.5 + 0.12*float64(v%17+1)
		p.Omega[i] = 0.6 + 0.07*float64(v%29+3)
		p.Amp[i] = 1.0 / (1.0 + 0.8*float64(i))
		p.Phase[i] = float64(v%360) * math.Pi / 180.0
	}
	return p
}
