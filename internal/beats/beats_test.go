package beats

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSimulateDefault(t *testing.T) {
	p := DefaultParams()
	w, bf := Simulate(p)

	if bf != 4.0 {
		t.Errorf("expected beat frequency 4, got %v", bf)
	}
	if w.Len() != 5000 || len(w.Values) != 5000 {
		t.Fatalf("expected 5000 samples, got t=%d values=%d", w.Len(), len(w.Values))
	}
	if w.T[0] != p.TStart || w.T[len(w.T)-1] != p.TEnd {
		t.Errorf("expected time axis [%v, %v], got [%v, %v]", p.TStart, p.TEnd, w.T[0], w.T[len(w.T)-1])
	}
	for i := 1; i < len(w.T); i++ {
		if w.T[i] < w.T[i-1] {
			t.Fatalf("time axis decreases at %d", i)
		}
	}
}

func TestSimulateSuperposition(t *testing.T) {
	p := Params{F1: 3, F2: 7, A1: 0.5, A2: 2, TStart: -1, TEnd: 2, NumPoints: 301}
	w, _ := Simulate(p)

	for i, ti := range w.T {
		w1 := p.A1 * math.Sin(2*math.Pi*p.F1*ti)
		w2 := p.A2 * math.Sin(2*math.Pi*p.F2*ti)
		if w.Wave1[i] != w1 || w.Wave2[i] != w2 {
			t.Fatalf("component mismatch at %d", i)
		}
		if w.Values[i] != w1+w2 {
			t.Fatalf("values[%d]: expected %v, got %v", i, w1+w2, w.Values[i])
		}
	}
}

func TestSimulateUnison(t *testing.T) {
	p := DefaultParams()
	p.F2 = 440
	w, bf := Simulate(p)

	if bf != 0 {
		t.Errorf("expected beat frequency 0, got %v", bf)
	}
	for i, ti := range w.T {
		want := 2 * math.Sin(2*math.Pi*440*ti)
		if math.Abs(w.Values[i]-want) > 1e-9 {
			t.Fatalf("values[%d]: expected %v, got %v", i, want, w.Values[i])
		}
	}
}

func TestBeatFrequency(t *testing.T) {
	tests := []struct {
		f1, f2, want float64
	}{
		{440, 444, 4},
		{444, 440, 4},
		{440, 440, 0},
		{0.5, 0.25, 0.25},
		{-5, 5, 10},
	}
	for _, tt := range tests {
		if got := BeatFrequency(tt.f1, tt.f2); got != tt.want {
			t.Errorf("BeatFrequency(%v, %v): expected %v, got %v", tt.f1, tt.f2, tt.want, got)
		}
	}
}

func TestSimulateDegenerate(t *testing.T) {
	p := DefaultParams()
	p.NumPoints = 1
	w, _ := Simulate(p)
	if w.Len() != 1 || w.T[0] != p.TStart {
		t.Errorf("expected single sample at t_start, got %v", w.T)
	}

	p.NumPoints = 0
	w, _ = Simulate(p)
	if w.Len() != 0 || len(w.Values) != 0 {
		t.Errorf("expected empty waveform, got %d samples", w.Len())
	}

	p = DefaultParams()
	p.TEnd = p.TStart
	p.NumPoints = 10
	w, _ = Simulate(p)
	for i, v := range w.Values {
		if v != w.Values[0] || math.IsNaN(v) {
			t.Fatalf("expected constant NaN-free output, got values[%d]=%v", i, v)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"default", func(p *Params) {}, nil},
		{"zero f1", func(p *Params) { p.F1 = 0 }, ErrFrequency},
		{"nan f2", func(p *Params) { p.F2 = math.NaN() }, ErrFrequency},
		{"empty range", func(p *Params) { p.TEnd = p.TStart }, ErrTimeRange},
		{"one sample", func(p *Params) { p.NumPoints = 1 }, ErrSampleCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSampleRate(t *testing.T) {
	p := DefaultParams()
	if got := p.SampleRate(); got != 4999 {
		t.Errorf("expected 4999 Hz, got %v", got)
	}
	p.NumPoints = 1
	if got := p.SampleRate(); got != 0 {
		t.Errorf("expected 0 for degenerate axis, got %v", got)
	}
}

func TestFrequencySweep(t *testing.T) {
	panels := FrequencySweep(DefaultDeltas)
	if len(panels) != len(DefaultDeltas) {
		t.Fatalf("expected %d panels, got %d", len(DefaultDeltas), len(panels))
	}
	for i, sp := range panels {
		df := DefaultDeltas[i]
		if sp.Params.F1 != 440 || sp.Params.F2 != 440+df {
			t.Errorf("panel %d: expected 440/%v Hz, got %v/%v", i, 440+df, sp.Params.F1, sp.Params.F2)
		}
		if sp.Params.TEnd != 2 {
			t.Errorf("panel %d: expected t_end 2, got %v", i, sp.Params.TEnd)
		}
		if sp.Beat != df {
			t.Errorf("panel %d: expected beat %v, got %v", i, df, sp.Beat)
		}
		if !strings.Contains(sp.Title, "Beat Frequency") {
			t.Errorf("panel %d: unexpected title %q", i, sp.Title)
		}
	}
	if panels[2].Title != "Frequency Difference = 5 Hz, Beat Frequency = 5 Hz" {
		t.Errorf("unexpected title %q", panels[2].Title)
	}
}

func TestAmplitudeSweep(t *testing.T) {
	panels := AmplitudeSweep(DefaultAmplitudeRatios)
	if len(panels) != 4 {
		t.Fatalf("expected 4 panels, got %d", len(panels))
	}
	for i, sp := range panels {
		if sp.Beat != 4 {
			t.Errorf("panel %d: expected beat 4, got %v", i, sp.Beat)
		}
		if sp.Params.F1 != 440 || sp.Params.F2 != 444 {
			t.Errorf("panel %d: frequencies changed", i)
		}
	}
	if panels[0].Value != 0.5 {
		t.Errorf("expected ratio 0.5, got %v", panels[0].Value)
	}
	if panels[0].Title != "Amplitude Ratio A1/A2 = 0.50, Beat Frequency = 4 Hz" {
		t.Errorf("unexpected title %q", panels[0].Title)
	}

	series := SweepSeries(panels)
	if len(series) != 4 || series[3].Title != panels[3].Title {
		t.Error("sweep series out of order")
	}
}

func TestPanels(t *testing.T) {
	p := DefaultParams()
	w, bf := Simulate(p)
	series := Panels(p, w, bf)

	if len(series) != 3 {
		t.Fatalf("expected 3 panels, got %d", len(series))
	}
	want := []string{
		"Wave 1: Frequency = 440 Hz, Amplitude = 1.0",
		"Wave 2: Frequency = 444 Hz, Amplitude = 1.0",
		"Superposed Wave (Beat Frequency = 4 Hz)",
	}
	for i, s := range series {
		if s.Title != want[i] {
			t.Errorf("panel %d: expected %q, got %q", i, want[i], s.Title)
		}
		if s.XLabel != "Time (s)" {
			t.Errorf("panel %d: expected time on x-axis, got %q", i, s.XLabel)
		}
		if len(s.X) != len(s.Y) {
			t.Errorf("panel %d: length mismatch", i)
		}
	}
}

func TestAmplitudeString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{5, "5.0"},
		{0.5, "0.5"},
		{-2, "-2.0"},
		{1e21, "1e+21"},
		{math.Inf(1), "+Inf"},
	}
	for _, tt := range tests {
		if got := amplitudeString(tt.in); got != tt.want {
			t.Errorf("amplitudeString(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
