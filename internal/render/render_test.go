package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/san-kum/modharm/internal/sequence"
	"github.com/san-kum/modharm/internal/synth"
)

func testPartials(t *testing.T) *synth.PartialSet {
	t.Helper()
	seq, err := sequence.Generate(2, 9, 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return synth.Synthesize(seq, 0)
}

func TestRender_FrameGeometry(t *testing.T) {
	p := testPartials(t)
	const w, h = 40, 16
	for _, mode := range Modes() {
		r := ForMode(mode)
		frame := r.Render(p, w, h, 1.25)
		lines := strings.Split(frame, "\n")
		if len(lines) != h+1 {
			t.Fatalf("%s: got %d lines, want %d rows + footer", mode, len(lines), h+1)
		}
		for i, line := range lines[:h] {
			if n := utf8.RuneCountInString(line); n != w {
				t.Errorf("%s: row %d has %d cells, want %d", mode, i, n, w)
			}
		}
	}
}

func TestRender_Footer(t *testing.T) {
	p := testPartials(t)
	for _, mode := range Modes() {
		frame := ForMode(mode).Render(p, 48, 20, 0)
		lines := strings.Split(frame, "\n")
		foot := lines[len(lines)-1]
		for _, want := range []string{mode.String(), "48x20", "partials=6"} {
			if !strings.Contains(foot, want) {
				t.Errorf("%s footer %q missing %q", mode, foot, want)
			}
		}
	}
}

func TestRender_Pure(t *testing.T) {
	p := testPartials(t)
	times := []float64{0, 0.5, 3.125, 100}
	for _, mode := range Modes() {
		r := ForMode(mode)
		for _, tm := range times {
			a := r.Render(p, 64, 18, tm)
			b := r.Render(p, 64, 18, tm)
			if a != b {
				t.Fatalf("%s is not pure at t=%v: frames differ", mode, tm)
			}
		}
	}
}

func TestOscilloscope_TraceAndBaseline(t *testing.T) {
	p := testPartials(t)
	const w, h = 60, 20
	frame := Oscilloscope{}.Render(p, w, h, 0.7)
	rows := strings.Split(frame, "\n")[:h]

	traces := 0
	for _, row := range rows {
		traces += strings.Count(row, string(traceRune))
	}
	// One trace mark per even column.
	if traces != w/2 {
		t.Errorf("trace marks = %d, want %d", traces, w/2)
	}
	if !strings.ContainsRune(rows[h/2], baselineRune) {
		t.Error("midline row has no baseline character")
	}
}

func TestLissajous_PlotsPoints(t *testing.T) {
	p := testPartials(t)
	frame := Lissajous{}.Render(p, 50, 18, 2.0)
	rows := strings.Split(frame, "\n")[:18]
	lit := 0
	for _, row := range rows {
		for _, r := range row {
			if r > 0x2800 && r <= 0x28FF {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("lissajous frame has no lit cells")
	}
}

func TestPlasma_RampAndDensity(t *testing.T) {
	if n := utf8.RuneCountInString(brightnessRamp); n < 60 {
		t.Fatalf("brightness ramp has %d levels, want >= 60", n)
	}
	p := testPartials(t)
	const w, h = 40, 16
	frame := Plasma{}.Render(p, w, h, 5.0)
	rows := strings.Split(frame, "\n")[:h]
	distinct := make(map[rune]bool)
	for _, row := range rows {
		for _, r := range row {
			distinct[r] = true
		}
	}
	// A dense texture should use more than a couple of ramp levels.
	if len(distinct) < 4 {
		t.Errorf("plasma used only %d distinct characters", len(distinct))
	}
}

func TestMode_ParseAndString(t *testing.T) {
	if ModeOscilloscope.String() != "oscilloscope" || ModeLissajous.String() != "lissajous" || ModePlasma.String() != "plasma" {
		t.Error("mode names changed")
	}
	if Mode(0).Valid() || Mode(4).Valid() {
		t.Error("out-of-range modes must be invalid")
	}
	if ForMode(Mode(99)).Name() != "oscilloscope" {
		t.Error("unknown mode should fall back to oscilloscope")
	}
}
