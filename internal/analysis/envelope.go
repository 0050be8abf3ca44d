package analysis

import (
	"math"

	"github.com/san-kum/wavelab/internal/numeric"
)

// minModulation is the smallest envelope swing, relative to its peak, that
// EstimateBeat treats as a beat rather than sampling ripple.
const minModulation = 0.1

// Envelope is the running maximum of |values| over a centred window of
// 2*half+1 samples.
func Envelope(values []float64, half int) []float64 {
	if half < 0 {
		half = 0
	}
	env := make([]float64, len(values))
	for i := range values {
		lo, hi := i-half, i+half
		if lo < 0 {
			lo = 0
		}
		if hi > len(values)-1 {
			hi = len(values) - 1
		}
		m := 0.0
		for j := lo; j <= hi; j++ {
			if a := math.Abs(values[j]); a > m {
				m = a
			}
		}
		env[i] = m
	}
	return env
}

// EstimateBeat measures the beat frequency of a sampled superposition from
// its amplitude envelope: the rate of upward crossings of the envelope mean.
// carrier is the lower of the two tone frequencies and sets the envelope
// window. It returns 0 when fewer than two beats are visible or the envelope
// is essentially flat.
func EstimateBeat(t, values []float64, carrier float64) float64 {
	if len(t) < 3 || len(t) != len(values) || carrier <= 0 {
		return 0
	}
	dt := (t[len(t)-1] - t[0]) / float64(len(t)-1)
	if dt <= 0 {
		return 0
	}
	half := int(math.Ceil(1 / (carrier * dt)))
	env := Envelope(values, half)

	lo, hi := numeric.MinMax(env)
	if hi == 0 || hi-lo < minModulation*hi {
		return 0
	}
	mean := 0.0
	for _, v := range env {
		mean += v
	}
	mean /= float64(len(env))

	// Re-arm only after dropping clearly below the mean so sampling ripple
	// on the envelope does not count as extra beats.
	rearm := mean - 0.1*(hi-lo)
	armed := env[0] < rearm
	crossings := make([]float64, 0)
	for i := 1; i < len(env); i++ {
		if env[i] < rearm {
			armed = true
		}
		if armed && env[i-1] < mean && env[i] >= mean {
			crossings = append(crossings, t[i])
			armed = false
		}
	}
	if len(crossings) < 2 {
		return 0
	}
	span := crossings[len(crossings)-1] - crossings[0]
	if span <= 0 {
		return 0
	}
	return float64(len(crossings)-1) / span
}

// ModulationDepth is (max-min)/(max+min) of the envelope, the fringe
// visibility of the beat pattern: 1 for equal amplitudes, falling as they
// diverge.
func ModulationDepth(values []float64, half int) float64 {
	env := Envelope(values, half)
	if len(env) == 0 {
		return 0
	}
	lo, hi := numeric.MinMax(env)
	if hi+lo == 0 {
		return 0
	}
	return (hi - lo) / (hi + lo)
}
