package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced samples over [start, stop], both ends
// included. n == 1 yields {start}; n <= 0 yields an empty slice.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	dst := floats.Span(make([]float64, n), start, stop)
	// Span accumulates start+i*step; pin the endpoint exactly.
	dst[n-1] = stop
	return dst
}

// Meshgrid builds row-major coordinate matrices with len(y) rows and len(x)
// columns: xx[i][j] = x[j], yy[i][j] = y[i].
func Meshgrid(x, y []float64) (xx, yy [][]float64) {
	xx = make([][]float64, len(y))
	yy = make([][]float64, len(y))
	for i := range y {
		xx[i] = make([]float64, len(x))
		copy(xx[i], x)
		yy[i] = make([]float64, len(x))
		for j := range x {
			yy[i][j] = y[i]
		}
	}
	return xx, yy
}

// Radius returns sqrt(xx^2 + yy^2) elementwise.
func Radius(xx, yy [][]float64) [][]float64 {
	r := make([][]float64, len(xx))
	for i := range xx {
		r[i] = make([]float64, len(xx[i]))
		for j := range xx[i] {
			x, y := xx[i][j], yy[i][j]
			r[i][j] = math.Sqrt(x*x + y*y)
		}
	}
	return r
}

// Sine returns amp*sin(2*pi*freq*t) for every sample in t.
func Sine(t []float64, freq, amp float64) []float64 {
	out := make([]float64, len(t))
	for i, v := range t {
		out[i] = amp * math.Sin(2*math.Pi*freq*v)
	}
	return out
}

// Add returns a+b elementwise. Lengths must match.
func Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)
	floats.Add(out, b)
	return out
}

// MinMax returns the extrema of s. Empty input yields (0, 0).
func MinMax(s []float64) (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	return floats.Min(s), floats.Max(s)
}

// IsFinite reports whether s contains no NaN or Inf.
func IsFinite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsFinite2D is IsFinite over every row of m.
func IsFinite2D(m [][]float64) bool {
	for _, row := range m {
		if !IsFinite(row) {
			return false
		}
	}
	return true
}
