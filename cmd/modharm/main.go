package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/modharm/internal/anim"
	"github.com/san-kum/modharm/internal/config"
	"github.com/san-kum/modharm/internal/render"
	"github.com/san-kum/modharm/internal/sequence"
	"github.com/san-kum/modharm/internal/synth"
	"github.com/san-kum/modharm/internal/tui"
)

var (
	mode       int
	width      int
	height     int
	intervalMs int
	maxLen     int
	partials   int
	configFile string
	preset     string
)

// main registers the modharm commands; with no subcommand the interactive
// TUI is launched.
func main() {
	rootCmd := &cobra.Command{
		Use:   "modharm",
		Short: "modular harmonic sequence visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [base] [modulus]",
		Short: "print the sequence and its partials",
		Args:  cobra.ExactArgs(2),
		RunE:  runShow,
	}
	showCmd.Flags().IntVar(&maxLen, "max-len", sequence.DefaultMaxLen, "sequence length cap")
	showCmd.Flags().IntVar(&partials, "partials", synth.DefaultMaxPartials, "partial count cap")

	liveCmd := &cobra.Command{
		Use:   "live [base] [modulus]",
		Short: "animate the sequence in the terminal",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&mode, "mode", int(render.ModeOscilloscope), "render mode (1 oscilloscope, 2 lissajous, 3 plasma)")
	liveCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width")
	liveCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height")
	liveCmd.Flags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "frame interval in ms")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	benchCmd := &cobra.Command{
		Use:   "bench [base] [modulus]",
		Short: "benchmark the renderers",
		Args:  cobra.ExactArgs(2),
		RunE:  runBench,
	}

	exportCmd := &cobra.Command{
		Use:   "export [base] [modulus]",
		Short: "export sequence and partials as JSON",
		Args:  cobra.ExactArgs(2),
		RunE:  runExport,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBASE\tMODULUS\tMODE\tCANVAS\tINTERVAL")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%dx%d\t%dms\n",
					name, p.Base, p.Modulus, render.Mode(p.Mode), p.Width, p.Height, p.IntervalMs)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(showCmd, liveCmd, benchCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseArgs(args []string) (base, modulus uint64, err error) {
	base, err = strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("base %q: %w", args[0], err)
	}
	modulus, err = strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("modulus %q: %w", args[1], err)
	}
	return base, modulus, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	base, modulus, err := parseArgs(args)
	if err != nil {
		return err
	}
	seq, err := sequence.Generate(base, modulus, maxLen)
	if err != nil {
		return err
	}

	fmt.Printf("orbit of %d mod %d: period %d\n\n", base, modulus, len(seq))
	for i, v := range seq {
		fmt.Printf("  term %d: %d\n", i+1, v)
		if i == 23 && len(seq) > 25 {
			fmt.Printf("  ... %d more terms\n", len(seq)-24)
			break
		}
	}

	if len(seq) > 1 {
		data := make([]float64, len(seq))
		for i, v := range seq {
			data[i] = float64(v)
		}
		if len(data) > 120 {
			data = data[:120]
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("orbit values"),
		))
	}

	p := synth.Synthesize(seq, partials)
	fmt.Printf("\npartials: %d\n", p.Len())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tFREQ\tOMEGA\tAMP\tPHASE")
	for i := 0; i < p.Len(); i++ {
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%.3f\t%.3f\n", i, p.Freq[i], p.Omega[i], p.Amp[i], p.Phase[i])
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if len(args) == 2 {
		base, modulus, err := parseArgs(args)
		if err != nil {
			return err
		}
		cfg.Base, cfg.Modulus = base, modulus
	}

	c, err := anim.New(os.Stdout, cfg)
	if err != nil {
		return err
	}
	if !c.Start() {
		return fmt.Errorf("nothing to animate")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	c.Stop()
	fmt.Println()
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	base, modulus, err := parseArgs(args)
	if err != nil {
		return err
	}
	seq, err := sequence.Generate(base, modulus, sequence.DefaultMaxLen)
	if err != nil {
		return err
	}
	p := synth.Synthesize(seq, synth.DefaultMaxPartials)

	const frames = 200
	fmt.Printf("benchmarking renderers (%dx%d, %d partials)\n\n", config.DefaultWidth, config.DefaultHeight, p.Len())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tFRAMES\tTIME\tFPS")
	for _, m := range render.Modes() {
		r := render.ForMode(m)
		start := time.Now()
		for i := 0; i < frames; i++ {
			r.Render(p, config.DefaultWidth, config.DefaultHeight, float64(i)*0.05)
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\n", m, frames, elapsed, frames/elapsed.Seconds())
	}
	return w.Flush()
}

type exportDoc struct {
	Base     uint64    `json:"base"`
	Modulus  uint64    `json:"modulus"`
	Sequence []uint64  `json:"sequence"`
	Freq     []float64 `json:"freq"`
	Omega    []float64 `json:"omega"`
	Amp      []float64 `json:"amp"`
	Phase    []float64 `json:"phase"`
}

func runExport(cmd *cobra.Command, args []string) error {
	base, modulus, err := parseArgs(args)
	if err != nil {
		return err
	}
	seq, err := sequence.Generate(base, modulus, sequence.DefaultMaxLen)
	if err != nil {
		return err
	}
	p := synth.Synthesize(seq, synth.DefaultMaxPartials)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(exportDoc{
		Base:     base,
		Modulus:  modulus,
		Sequence: seq,
		Freq:     p.Freq,
		Omega:    p.Omega,
		Amp:      p.Amp,
		Phase:    p.Phase,
	})
}
