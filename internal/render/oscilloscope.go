package render

import (
	"math"

	"github.com/san-kum/modharm/internal/synth"
)

const (
	traceRune    = '●'
	baselineRune = '·'
	blankRune    = ' '
)

// Oscilloscope draws the summed partial signal as a single trace over a
// midline, one sample per column. The trace is marked on every other
// column so it reads as a beam rather than a solid band.
type Oscilloscope struct{}

func (Oscilloscope) Name() string { return ModeOscilloscope.String() }

func (Oscilloscope) Render(p *synth.PartialSet, w, h int, t float64) string {
	grid := blankGrid(w, h)
	mid := h / 2
	for x := 0; x < w; x++ {
		grid[mid][x] = baselineRune
	}

	for x := 0; x < w; x += 2 {
		xn := float64(x) / float64(w)
		sum := 0.0
		for k := 0; k < p.Len(); k++ {
			sum += p.Amp[k] * math.Sin(2*math.Pi*p.Freq[k]*xn+p.Omega[k]*t+p.Phase[k])
		}
		v := math.Tanh(sum)
		row := mid - int(math.Round(v*0.4*float64(h)))
		if row < 0 {
			row = 0
		}
		if row >= h {
			row = h - 1
		}
		grid[row][x] = traceRune
	}

	return joinFrame(gridRows(grid), footer(ModeOscilloscope.String(), w, h, p.Len()))
}

func blankGrid(w, h int) [][]rune {
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = blankRune
		}
	}
	return grid
}

func gridRows(grid [][]rune) []string {
	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	return rows
}
