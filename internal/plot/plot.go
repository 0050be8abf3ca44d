// Package plot is the rendering side of wavelab.
//
// Computations describe what they want drawn with two value types:
//
//   - [Series]: one line chart (x, y, title, axis labels)
//   - [Image]: one scalar field shown as a grayscale image
//
// and this package turns them into artifacts:
//
//   - [WriteStackedHTML] / [WriteHeatmapHTML]: interactive go-echarts pages
//   - [WritePNG]: 8-bit grayscale raster
//   - [WriteSVG]: static stacked line charts
//   - [Terminal]: asciigraph charts for stdout
package plot

import (
	"errors"
	"math"
)

var (
	// ErrNoData indicates an empty series or image.
	ErrNoData = errors.New("plot: nothing to render")

	// ErrShape indicates mismatched x/y lengths or a ragged image.
	ErrShape = errors.New("plot: inconsistent data shape")
)

// Series is a single line chart.
type Series struct {
	X      []float64
	Y      []float64
	Title  string
	XLabel string
	YLabel string
	Color  string
}

func (s Series) validate() error {
	if len(s.X) == 0 {
		return ErrNoData
	}
	if len(s.X) != len(s.Y) {
		return ErrShape
	}
	return nil
}

// Extent is the data-space rectangle covered by an image.
type Extent struct {
	XMin, XMax, YMin, YMax float64
}

// Image is a scalar field. Data[i][j] is row i (y, bottom to top) and
// column j (x, left to right); the first row is drawn at the bottom.
type Image struct {
	Data       [][]float64
	Extent     Extent
	VMin, VMax float64
	Title      string
	Label      string
	XLabel     string
	YLabel     string
	HideAxes   bool
}

func (img Image) validate() error {
	if len(img.Data) == 0 || len(img.Data[0]) == 0 {
		return ErrNoData
	}
	w := len(img.Data[0])
	for _, row := range img.Data {
		if len(row) != w {
			return ErrShape
		}
	}
	return nil
}

// normalize maps v into [0,1] using the fixed display range, clipping
// outside values the way a fixed colour scale does.
func (img Image) normalize(v float64) float64 {
	span := img.VMax - img.VMin
	if span == 0 {
		span = 1
	}
	n := (v - img.VMin) / span
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Decimate keeps every k-th point so that roughly max points remain.
// The last sample is always kept.
func Decimate(xs, ys []float64, max int) ([]float64, []float64) {
	n := len(xs)
	if max <= 0 || n <= max {
		return xs, ys
	}
	stride := (n + max - 1) / max
	outX := make([]float64, 0, max+1)
	outY := make([]float64, 0, max+1)
	for i := 0; i < n; i += stride {
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	if outX[len(outX)-1] != xs[n-1] {
		outX = append(outX, xs[n-1])
		outY = append(outY, ys[n-1])
	}
	return outX, outY
}

// Downsample2D keeps every k-th row and column so that neither side exceeds
// max cells. It returns the kept indices alongside the reduced matrix.
func Downsample2D(m [][]float64, max int) ([][]float64, []int, []int) {
	rows := strideIndices(len(m), max)
	cols := []int{}
	if len(m) > 0 {
		cols = strideIndices(len(m[0]), max)
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, len(cols))
		for j, c := range cols {
			out[i][j] = m[r][c]
		}
	}
	return out, rows, cols
}

func strideIndices(n, max int) []int {
	stride := 1
	if max > 0 && n > max {
		stride = (n + max - 1) / max
	}
	idx := make([]int, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	return idx
}
