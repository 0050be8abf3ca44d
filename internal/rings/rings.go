// Package rings computes the Newton's rings interference pattern seen
// between a plano-convex lens and a flat glass plate.
//
// The intensity model is sin²(π·r²/(λ·R)). The sine (rather than cosine)
// stands in for the half-wave loss at the plate, which makes the centre dark.
package rings

import (
	"math"

	"github.com/san-kum/wavelab/internal/numeric"
	"github.com/san-kum/wavelab/internal/plot"
)

const (
	// HeNeWavelength is the helium-neon laser line in metres.
	HeNeWavelength = 632.8e-9

	DefaultLensRadius = 0.1
	DefaultHalfExtent = 0.005
	DefaultResolution = 1000
)

// Optics holds the light and lens parameters, in metres.
type Optics struct {
	Lambda float64 `yaml:"lambda"`
	RLens  float64 `yaml:"r_lens"`
}

// DefaultOptics is a He-Ne laser on a 10 cm lens.
func DefaultOptics() Optics {
	return Optics{Lambda: HeNeWavelength, RLens: DefaultLensRadius}
}

// RingRadius is the radius of the k-th bright ring under this model,
// where the phase reaches (k + 1/2)·π.
func (o Optics) RingRadius(k int) float64 {
	return math.Sqrt((float64(k) + 0.5) * o.Lambda * o.RLens)
}

// RingsWithin counts the bright rings whose radius is at most r.
func (o Optics) RingsWithin(r float64) int {
	lr := o.Lambda * o.RLens
	if !(lr > 0) || r <= 0 {
		return 0
	}
	return int(math.Floor(r*r/lr + 0.5))
}

// Grid is a square sampling of the plate. XX, YY and R are indexed
// [row][col] with rows following Y and columns following X.
type Grid struct {
	X, Y       []float64
	XX, YY     [][]float64
	R          [][]float64
	HalfExtent float64
}

// Resolution is the number of samples per side.
func (g *Grid) Resolution() int { return len(g.X) }

// BuildGrid samples [-halfExtent, halfExtent] with resolution points on
// both axes and derives the radial distance field.
func BuildGrid(halfExtent float64, resolution int) *Grid {
	x := numeric.Linspace(-halfExtent, halfExtent, resolution)
	y := numeric.Linspace(-halfExtent, halfExtent, resolution)
	xx, yy := numeric.Meshgrid(x, y)

	return &Grid{
		X:          x,
		Y:          y,
		XX:         xx,
		YY:         yy,
		R:          numeric.Radius(xx, yy),
		HalfExtent: halfExtent,
	}
}

// Field is an intensity map with the same shape as the radii it came from.
type Field [][]float64

// Phase is π·r²/(λ·R).
func Phase(r, lambda, rLens float64) float64 {
	return math.Pi * r * r / (lambda * rLens)
}

// Intensity is sin²(Phase(r, λ, R)).
func Intensity(r, lambda, rLens float64) float64 {
	s := math.Sin(Phase(r, lambda, rLens))
	return s * s
}

// ComputeIntensity evaluates Intensity over every radius. No clamping is
// applied; a zero wavelength or lens radius yields NaN.
func ComputeIntensity(r [][]float64, lambda, rLens float64) Field {
	f := make(Field, len(r))
	for i := range r {
		f[i] = make([]float64, len(r[i]))
		for j, v := range r[i] {
			f[i][j] = Intensity(v, lambda, rLens)
		}
	}
	return f
}

// Compute is BuildGrid followed by ComputeIntensity.
func Compute(o Optics, halfExtent float64, resolution int) (*Grid, Field) {
	g := BuildGrid(halfExtent, resolution)
	return g, ComputeIntensity(g.R, o.Lambda, o.RLens)
}

// Image describes how the field is displayed: grayscale, fixed [0,1]
// scale, extent in metres, axes hidden.
func (f Field) Image(halfExtent float64) plot.Image {
	return plot.Image{
		Data: f,
		Extent: plot.Extent{
			XMin: -halfExtent, XMax: halfExtent,
			YMin: -halfExtent, YMax: halfExtent,
		},
		VMin:     0,
		VMax:     1,
		Title:    "Newton's Rings Interference Pattern",
		Label:    "Intensity",
		XLabel:   "x (m)",
		YLabel:   "y (m)",
		HideAxes: true,
	}
}

// Stats summarises a field for logging.
type Stats struct {
	Min, Max, Mean float64
	Finite         bool
}

func (f Field) Stats() Stats {
	st := Stats{Finite: numeric.IsFinite2D(f)}
	n := 0
	for _, row := range f {
		if len(row) == 0 {
			continue
		}
		lo, hi := numeric.MinMax(row)
		if n == 0 || lo < st.Min {
			st.Min = lo
		}
		if n == 0 || hi > st.Max {
			st.Max = hi
		}
		for _, v := range row {
			st.Mean += v
		}
		n += len(row)
	}
	if n > 0 {
		st.Mean /= float64(n)
	}
	return st
}
