// Package anim owns the background render loop.
//
// A Controller holds two atomically swapped immutable snapshots: the canvas
// settings and the current partial bank. The loop goroutine loads both once
// per frame, so concurrent edits from the menu flow are picked up on the
// next frame without locks and without ever exposing a torn partial set.
// Cancellation is cooperative: the run flag is checked once per iteration,
// and Stop joins the goroutine, so worst-case stop latency is one frame
// interval.
package anim

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/modharm/internal/config"
	"github.com/san-kum/modharm/internal/render"
	"github.com/san-kum/modharm/internal/sequence"
	"github.com/san-kum/modharm/internal/synth"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Settings is one immutable canvas snapshot. Mutators build a fresh copy
// and swap the pointer; the loop never sees a partial update.
type Settings struct {
	Mode     render.Mode
	Width    int
	Height   int
	Interval time.Duration
}

// Controller drives the animation loop and owns the shared state the loop
// reads. All exported methods are safe to call from the menu flow while
// the loop runs.
type Controller struct {
	out io.Writer

	settings atomic.Pointer[Settings]
	partials atomic.Pointer[synth.PartialSet]
	seq      atomic.Pointer[sequence.Sequence]

	maxSeq      int
	maxPartials int

	running atomic.Bool
	mu      sync.Mutex // serializes Start/Stop transitions
	done    chan struct{}
}

// New validates cfg, generates the initial sequence and partial bank, and
// returns an idle controller writing frames to out.
func New(out io.Writer, cfg *config.Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		out:         out,
		maxSeq:      cfg.MaxSequence,
		maxPartials: cfg.MaxPartials,
	}
	c.settings.Store(&Settings{
		Mode:     render.Mode(cfg.Mode),
		Width:    cfg.Width,
		Height:   cfg.Height,
		Interval: time.Duration(cfg.IntervalMs) * time.Millisecond,
	})
	if err := c.Regenerate(cfg.Base, cfg.Modulus); err != nil {
		return nil, err
	}
	return c, nil
}

// Regenerate replaces the sequence and partial bank wholesale. A zero
// modulus is rejected and the prior state is left untouched. Takes effect
// on the next frame; the elapsed-time origin is preserved.
func (c *Controller) Regenerate(base, modulus uint64) error {
	seq, err := sequence.Generate(base, modulus, c.maxSeq)
	if err != nil {
		return err
	}
	c.seq.Store(&seq)
	c.partials.Store(synth.Synthesize(seq, c.maxPartials))
	return nil
}

// SetMode switches the renderer for subsequent frames.
func (c *Controller) SetMode(m render.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", config.ErrUnknownMode, int(m))
	}
	s := *c.settings.Load()
	s.Mode = m
	c.settings.Store(&s)
	return nil
}

// SetCanvas resizes the frame grid; dimensions below 40x16 are rejected
// and the prior settings stand.
func (c *Controller) SetCanvas(w, h int) error {
	if w < config.MinWidth || h < config.MinHeight {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)", config.ErrCanvasTooSmall, w, h, config.MinWidth, config.MinHeight)
	}
	s := *c.settings.Load()
	s.Width, s.Height = w, h
	c.settings.Store(&s)
	return nil
}

// SetInterval adjusts frame pacing within [10,200] ms.
func (c *Controller) SetInterval(d time.Duration) error {
	if d < config.MinIntervalMs*time.Millisecond || d > config.MaxIntervalMs*time.Millisecond {
		return fmt.Errorf("%w: %v", config.ErrIntervalRange, d)
	}
	s := *c.settings.Load()
	s.Interval = d
	c.settings.Store(&s)
	return nil
}

// Settings returns the current canvas snapshot.
func (c *Controller) Settings() Settings { return *c.settings.Load() }

// Sequence returns a copy of the current sequence.
func (c *Controller) Sequence() sequence.Sequence { return (*c.seq.Load()).Clone() }

// Partials returns the current immutable partial bank.
func (c *Controller) Partials() *synth.PartialSet { return c.partials.Load() }

// Running reports whether the render loop is active.
func (c *Controller) Running() bool { return c.running.Load() }

// Start launches the render loop. Returns false without side effects when
// a loop is already active or there is nothing to render yet.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running.Load() || c.partials.Load().Len() == 0 {
		return false
	}
	c.done = make(chan struct{})
	c.running.Store(true)
	go c.loop(c.done)
	return true
}

// Stop requests termination and joins the loop goroutine. A no-op when
// idle.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running.Load() {
		return
	}
	c.running.Store(false)
	<-c.done
}

func (c *Controller) loop(done chan struct{}) {
	defer close(done)
	fmt.Fprint(c.out, hideCursor)
	defer fmt.Fprint(c.out, showCursor)

	start := time.Now()
	for c.running.Load() {
		s := c.settings.Load()
		if p := c.partials.Load(); p.Len() > 0 {
			frame := render.ForMode(s.Mode).Render(p, s.Width, s.Height, time.Since(start).Seconds())
			fmt.Fprint(c.out, clearScreen+frame+"\n")
		}
		time.Sleep(s.Interval)
	}
}
