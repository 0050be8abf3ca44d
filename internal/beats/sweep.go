package beats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/wavelab/internal/plot"
)

const (
	timeLabel      = "Time (s)"
	amplitudeLabel = "Amplitude"

	// sweepFrequencyTEnd is the window used for the frequency sweep; two
	// seconds show at least two beat periods at a 1 Hz offset.
	sweepFrequencyTEnd = 2.0
)

var (
	DefaultDeltas          = []float64{1, 2, 5, 10}
	DefaultAmplitudeRatios = [][2]float64{{0.5, 1}, {1, 1}, {2, 1}, {5, 1}}
)

// SweepPanel is one simulated point of a parameter sweep.
type SweepPanel struct {
	Value    float64
	Params   Params
	Waveform *Waveform
	Beat     float64
	Title    string
}

// Series is the panel as a superposed-wave line chart.
func (sp SweepPanel) Series() plot.Series {
	return plot.Series{
		X:      sp.Waveform.T,
		Y:      sp.Waveform.Values,
		Title:  sp.Title,
		XLabel: timeLabel,
		YLabel: amplitudeLabel,
	}
}

// FrequencySweep fixes f1 at 440 Hz and simulates f2 = 440 + delta for each
// delta over a two second window.
func FrequencySweep(deltas []float64) []SweepPanel {
	panels := make([]SweepPanel, 0, len(deltas))
	for _, df := range deltas {
		p := DefaultParams()
		p.F2 = p.F1 + df
		p.TEnd = sweepFrequencyTEnd

		w, bf := Simulate(p)
		panels = append(panels, SweepPanel{
			Value:    df,
			Params:   p,
			Waveform: w,
			Beat:     bf,
			Title:    fmt.Sprintf("Frequency Difference = %g Hz, Beat Frequency = %g Hz", df, bf),
		})
	}
	return panels
}

// AmplitudeSweep keeps 440/444 Hz and simulates each (A1, A2) pair. The
// panel value is A1/A2.
func AmplitudeSweep(pairs [][2]float64) []SweepPanel {
	panels := make([]SweepPanel, 0, len(pairs))
	for _, pair := range pairs {
		p := DefaultParams()
		p.A1, p.A2 = pair[0], pair[1]

		w, bf := Simulate(p)
		ratio := p.A1 / p.A2
		panels = append(panels, SweepPanel{
			Value:    ratio,
			Params:   p,
			Waveform: w,
			Beat:     bf,
			Title:    fmt.Sprintf("Amplitude Ratio A1/A2 = %.2f, Beat Frequency = %g Hz", ratio, bf),
		})
	}
	return panels
}

// SweepSeries converts panels to line charts in order.
func SweepSeries(panels []SweepPanel) []plot.Series {
	series := make([]plot.Series, len(panels))
	for i, sp := range panels {
		series[i] = sp.Series()
	}
	return series
}

// Panels returns the three stacked charts for a single simulation: each
// component and their superposition.
func Panels(p Params, w *Waveform, beat float64) []plot.Series {
	return []plot.Series{
		{
			X:      w.T,
			Y:      w.Wave1,
			Title:  fmt.Sprintf("Wave 1: Frequency = %g Hz, Amplitude = %s", p.F1, amplitudeString(p.A1)),
			XLabel: timeLabel,
			YLabel: amplitudeLabel,
			Color:  "blue",
		},
		{
			X:      w.T,
			Y:      w.Wave2,
			Title:  fmt.Sprintf("Wave 2: Frequency = %g Hz, Amplitude = %s", p.F2, amplitudeString(p.A2)),
			XLabel: timeLabel,
			YLabel: amplitudeLabel,
			Color:  "red",
		},
		{
			X:      w.T,
			Y:      w.Values,
			Title:  fmt.Sprintf("Superposed Wave (Beat Frequency = %g Hz)", beat),
			XLabel: timeLabel,
			YLabel: amplitudeLabel,
			Color:  "green",
		},
	}
}

// amplitudeString prints an amplitude as a real number, keeping a trailing
// ".0" on whole values (1.0, not 1).
func amplitudeString(a float64) string {
	s := strconv.FormatFloat(a, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}
