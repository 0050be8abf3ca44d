package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavelab/internal/analysis"
	"github.com/san-kum/wavelab/internal/audio"
	"github.com/san-kum/wavelab/internal/beats"
	"github.com/san-kum/wavelab/internal/config"
	"github.com/san-kum/wavelab/internal/plot"
	"github.com/san-kum/wavelab/internal/rings"
	"github.com/san-kum/wavelab/internal/viz"
)

const (
	svgWidth       = 900
	svgPanelHeight = 220
	sparkWidth     = 48
)

// loadConfig resolves defaults, then the preset, then the config file. Flags
// are applied on top by the individual commands.
func loadConfig(cmd *cobra.Command, experiment string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(experiment, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(experiment))
		}
		cfg = p
	}

	// Config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if !cmd.Flags().Changed("out") && cfg.Output.Dir != "" {
		outDir = cfg.Output.Dir
	}
	return cfg, nil
}

func beatParams(cmd *cobra.Command, cfg *config.Config) beats.Params {
	p := cfg.Beats
	flags := cmd.Flags()
	if flags.Changed("f1") {
		p.F1 = f1
	}
	if flags.Changed("f2") {
		p.F2 = f2
	}
	if flags.Changed("a1") {
		p.A1 = a1
	}
	if flags.Changed("a2") {
		p.A2 = a2
	}
	if flags.Changed("t-start") {
		p.TStart = tStart
	}
	if flags.Changed("t-end") {
		p.TEnd = tEnd
	}
	if flags.Changed("points") {
		p.NumPoints = numPoints
	}
	return p
}

func ringParams(cmd *cobra.Command, cfg *config.Config) (rings.Optics, float64, int) {
	rc := cfg.Rings
	flags := cmd.Flags()
	if flags.Changed("lambda") {
		rc.Lambda = lambda
	}
	if flags.Changed("r-lens") {
		rc.RLens = rLens
	}
	if flags.Changed("half-extent") {
		rc.HalfExtent = halfExtent
	}
	if flags.Changed("resolution") {
		rc.Resolution = resolution
	}
	return rc.Optics, rc.HalfExtent, rc.Resolution
}

// envelopeHalf is one carrier period in samples.
func envelopeHalf(p beats.Params) int {
	carrier := math.Min(p.F1, p.F2)
	fs := p.SampleRate()
	if !(carrier > 0) || !(fs > 0) {
		return 1
	}
	return int(math.Ceil(fs / carrier))
}

func writeArtifact(name string, render func(io.Writer) error) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(outDir, name)
	start := time.Now()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path": path,
		"time": time.Since(start),
	}).Debug("Artifact written")
	fmt.Println(viz.Artifact(path))
	return nil
}

// writeSeries renders the non-empty series; a run with zero samples writes
// nothing rather than failing.
func writeSeries(cfg *config.Config, base, title string, series []plot.Series) error {
	series = nonEmpty(series)
	if len(series) == 0 {
		log.WithField("name", base).Warn("Nothing to plot")
		return nil
	}
	if cfg.Output.HTML {
		err := writeArtifact(base+".html", func(w io.Writer) error {
			return plot.WriteStackedHTML(w, title, series)
		})
		if err != nil {
			return err
		}
	}
	if cfg.Output.SVG {
		err := writeArtifact(base+".svg", func(w io.Writer) error {
			return plot.WriteSVG(w, series, svgWidth, svgPanelHeight)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func nonEmpty(series []plot.Series) []plot.Series {
	kept := make([]plot.Series, 0, len(series))
	for _, s := range series {
		if len(s.X) > 0 {
			kept = append(kept, s)
		}
	}
	return kept
}

func runBeats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "beats")
	if err != nil {
		return err
	}
	p := beatParams(cmd, cfg)
	if err := p.Validate(); err != nil {
		fmt.Println(viz.Warn(err.Error()))
	}

	start := time.Now()
	w, bf := beats.Simulate(p)
	log.WithFields(log.Fields{
		"points": w.Len(),
		"time":   time.Since(start),
	}).Debug("Beats simulated")

	metrics := []viz.Metric{
		viz.M("wave 1", "%g Hz, A = %g", p.F1, p.A1),
		viz.M("wave 2", "%g Hz, A = %g", p.F2, p.A2),
		viz.M("samples", "%d over [%g, %g] s", w.Len(), p.TStart, p.TEnd),
		viz.M("beat frequency", "%g Hz", bf),
	}
	if bf > 0 {
		metrics = append(metrics, viz.M("beat period", "%.4g s", 1/bf))
	}
	if w.Len() > 0 {
		env := analysis.Envelope(w.Values, envelopeHalf(p))
		metrics = append(metrics, viz.Metric{Label: "envelope", Value: viz.EnvelopeSparkline(env, math.Abs(p.A1)+math.Abs(p.A2), sparkWidth)})
	}
	fmt.Println(viz.Summary("Beats", metrics))

	series := beats.Panels(p, w, bf)
	if cfg.Output.Terminal && w.Len() > 0 {
		fmt.Println(plot.Terminal(series[2:], cfg.Output.PlotWidth, cfg.Output.PlotHeight))
	}
	if err := writeSeries(cfg, "beats", "Beat Frequency Simulation", series); err != nil {
		return err
	}

	if noSweep {
		return nil
	}
	return runSweeps(cfg)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "beats")
	if err != nil {
		return err
	}
	return runSweeps(cfg)
}

func runSweeps(cfg *config.Config) error {
	start := time.Now()
	freq := beats.FrequencySweep(cfg.Sweep.Deltas)
	amp := beats.AmplitudeSweep(cfg.AmplitudePairs())
	log.WithFields(log.Fields{
		"panels": len(freq) + len(amp),
		"time":   time.Since(start),
	}).Debug("Sweeps simulated")

	metrics := make([]viz.Metric, 0, len(freq)+len(amp))
	for _, sp := range freq {
		metrics = append(metrics, viz.M(fmt.Sprintf("delta f = %g Hz", sp.Value), "beat %g Hz", sp.Beat))
	}
	for _, sp := range amp {
		metrics = append(metrics, viz.M(fmt.Sprintf("A1/A2 = %.2f", sp.Value), "beat %g Hz", sp.Beat))
	}
	fmt.Println(viz.Summary("Sweeps", metrics))

	if err := writeSeries(cfg, "sweep_frequency", "Effect of Frequency Difference", beats.SweepSeries(freq)); err != nil {
		return err
	}
	return writeSeries(cfg, "sweep_amplitude", "Effect of Amplitude Ratio", beats.SweepSeries(amp))
}

func runRings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "rings")
	if err != nil {
		return err
	}
	o, half, res := ringParams(cmd, cfg)
	if !(o.Lambda > 0) || !(o.RLens > 0) {
		fmt.Println(viz.Warn(fmt.Sprintf("non-positive optics (lambda=%g, R=%g): intensity will not be finite", o.Lambda, o.RLens)))
	}

	start := time.Now()
	g, field := rings.Compute(o, half, res)
	st := field.Stats()
	log.WithFields(log.Fields{
		"resolution": g.Resolution(),
		"time":       time.Since(start),
	}).Debug("Intensity computed")

	fmt.Println(viz.Summary("Newton's Rings", []viz.Metric{
		viz.M("wavelength", "%.1f nm", o.Lambda*1e9),
		viz.M("lens radius", "%g m", o.RLens),
		viz.M("plate", "±%g m, %d x %d", half, g.Resolution(), g.Resolution()),
		viz.M("first bright ring", "%.4g mm", o.RingRadius(0)*1e3),
		viz.M("bright rings", "%d", o.RingsWithin(half)),
		viz.M("intensity", "min %.3f, max %.3f, mean %.3f", st.Min, st.Max, st.Mean),
	}))
	if !st.Finite {
		fmt.Println(viz.Warn("field contains NaN or Inf"))
	}

	img := field.Image(half)
	if cfg.Output.PNG {
		err := writeArtifact("newton_rings.png", func(w io.Writer) error {
			return plot.WritePNG(w, img)
		})
		if err != nil {
			return err
		}
	}
	if cfg.Output.HTML {
		err := writeArtifact("newton_rings.html", func(w io.Writer) error {
			return plot.WriteHeatmapHTML(w, img, cfg.Output.HeatmapCells)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "beats")
	if err != nil {
		return err
	}
	p := beatParams(cmd, cfg)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("cannot analyze: %w", err)
	}

	w, bf := beats.Simulate(p)
	fs := p.SampleRate()

	start := time.Now()
	spectrum := analysis.PowerSpectrum(w.Values)
	peaks := analysis.DominantFrequencies(w.Values, fs, numPeaks)
	measured := analysis.EstimateBeat(w.T, w.Values, math.Min(p.F1, p.F2))
	depth := analysis.ModulationDepth(w.Values, envelopeHalf(p))
	log.WithFields(log.Fields{
		"bins": len(spectrum),
		"time": time.Since(start),
	}).Debug("Spectrum computed")

	metrics := []viz.Metric{
		viz.M("sample rate", "%.0f Hz", fs),
		viz.M("bin width", "%.3f Hz", analysis.BinFrequency(1, w.Len(), fs)),
		viz.M("expected beat", "%g Hz", bf),
		viz.M("measured beat", "%.3f Hz", measured),
		viz.M("modulation depth", "%.2f", depth),
	}
	for i, pk := range peaks {
		metrics = append(metrics, viz.M(fmt.Sprintf("peak %d", i+1), "%.2f Hz (|X| = %.1f)", pk.Frequency, pk.Magnitude))
	}
	fmt.Println(viz.Summary("Analysis", metrics))

	if cfg.Output.Terminal {
		// Up to twice the higher tone keeps both peaks readable.
		fMax := math.Min(2*math.Max(p.F1, p.F2), fs/2)
		hi := int(fMax / analysis.BinFrequency(1, w.Len(), fs))
		if hi > len(spectrum) {
			hi = len(spectrum)
		}
		caption := fmt.Sprintf("|X(f)|, 0 to %.0f Hz", fMax)
		fmt.Println(plot.Spectrum(spectrum[:hi], caption, cfg.Output.PlotWidth, cfg.Output.PlotHeight))
	}
	return nil
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "beats")
	if err != nil {
		return err
	}
	p := beatParams(cmd, cfg)
	if err := p.Validate(); err != nil && errors.Is(err, beats.ErrFrequency) {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	fmt.Printf("playing %g Hz + %g Hz (beat %g Hz) for %gs...\n", p.F1, p.F2, beats.BeatFrequency(p.F1, p.F2), listenFor)
	err = audio.NewPlayer(p, volume).Play(ctx, time.Duration(listenFor*float64(time.Second)))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
