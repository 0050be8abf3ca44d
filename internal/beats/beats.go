// Package beats simulates the superposition of two sinusoids and the beat
// that appears when their frequencies are close.
//
//	p := beats.DefaultParams()
//	w, bf := beats.Simulate(p)
//	// bf == 4 for 440 Hz against 444 Hz
//
// Simulate never rejects its input: degenerate parameters produce
// degenerate output, and IEEE arithmetic decides the rest. Validate exists
// for callers that want to warn before simulating.
package beats

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/wavelab/internal/numeric"
)

const (
	DefaultF1        = 440.0
	DefaultF2        = 444.0
	DefaultAmplitude = 1.0
	DefaultTStart    = 0.0
	DefaultTEnd      = 1.0
	DefaultNumPoints = 5000
)

var (
	// ErrFrequency indicates a non-positive or non-finite frequency.
	ErrFrequency = errors.New("beats: frequency must be positive")

	// ErrTimeRange indicates t_start >= t_end.
	ErrTimeRange = errors.New("beats: t_start must be before t_end")

	// ErrSampleCount indicates fewer than two samples.
	ErrSampleCount = errors.New("beats: need at least two samples")
)

// Params describes the two waves and how to sample them.
type Params struct {
	F1        float64 `yaml:"f1"`
	F2        float64 `yaml:"f2"`
	A1        float64 `yaml:"a1"`
	A2        float64 `yaml:"a2"`
	TStart    float64 `yaml:"t_start"`
	TEnd      float64 `yaml:"t_end"`
	NumPoints int     `yaml:"num_points"`
}

// DefaultParams is 440 Hz against 444 Hz, unit amplitudes, one second.
func DefaultParams() Params {
	return Params{
		F1:        DefaultF1,
		F2:        DefaultF2,
		A1:        DefaultAmplitude,
		A2:        DefaultAmplitude,
		TStart:    DefaultTStart,
		TEnd:      DefaultTEnd,
		NumPoints: DefaultNumPoints,
	}
}

// Validate reports the first physically meaningless parameter.
func (p Params) Validate() error {
	if !(p.F1 > 0) || math.IsInf(p.F1, 0) {
		return fmt.Errorf("%w: f1=%v", ErrFrequency, p.F1)
	}
	if !(p.F2 > 0) || math.IsInf(p.F2, 0) {
		return fmt.Errorf("%w: f2=%v", ErrFrequency, p.F2)
	}
	if !(p.TStart < p.TEnd) {
		return fmt.Errorf("%w: [%v, %v]", ErrTimeRange, p.TStart, p.TEnd)
	}
	if p.NumPoints < 2 {
		return fmt.Errorf("%w: %d", ErrSampleCount, p.NumPoints)
	}
	return nil
}

// SampleRate is the spacing-derived sampling rate in Hz, or 0 when the
// time axis is degenerate.
func (p Params) SampleRate() float64 {
	if p.NumPoints < 2 || p.TEnd == p.TStart {
		return 0
	}
	return float64(p.NumPoints-1) / (p.TEnd - p.TStart)
}

// Waveform is the sampled superposition together with its two components.
type Waveform struct {
	T      []float64
	Wave1  []float64
	Wave2  []float64
	Values []float64
}

// Len is the number of samples.
func (w *Waveform) Len() int { return len(w.T) }

// BeatFrequency is |f2 - f1|.
func BeatFrequency(f1, f2 float64) float64 {
	return math.Abs(f2 - f1)
}

// Simulate samples A1*sin(2*pi*f1*t) + A2*sin(2*pi*f2*t) at NumPoints
// evenly spaced instants over [TStart, TEnd] and returns the waveform and
// the beat frequency.
func Simulate(p Params) (*Waveform, float64) {
	t := numeric.Linspace(p.TStart, p.TEnd, p.NumPoints)
	w1 := numeric.Sine(t, p.F1, p.A1)
	w2 := numeric.Sine(t, p.F2, p.A2)

	return &Waveform{
		T:      t,
		Wave1:  w1,
		Wave2:  w2,
		Values: numeric.Add(w1, w2),
	}, BeatFrequency(p.F1, p.F2)
}
