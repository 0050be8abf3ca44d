package analysis

import (
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

// NextPow2 is the smallest power of two >= n (1 for n <= 1).
func NextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// PowerSpectrum zero-pads data to a power of two and returns |X[k]| for the
// non-negative frequency half.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return []float64{}
	}
	padded := make([]float64, NextPow2(len(data)))
	copy(padded, data)

	spec := fft.FFTReal(padded)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// BinFrequency is the frequency in Hz of bin k of a spectrum computed from
// n input samples at sampleRate.
func BinFrequency(k, n int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(NextPow2(n))
}

// Peak is a local maximum of a magnitude spectrum.
type Peak struct {
	Bin       int
	Frequency float64
	Magnitude float64
}

// DominantFrequencies returns the k strongest spectral peaks of values,
// strongest first. The DC bin is ignored.
func DominantFrequencies(values []float64, sampleRate float64, k int) []Peak {
	ps := PowerSpectrum(values)
	peaks := make([]Peak, 0)
	for i := 1; i < len(ps)-1; i++ {
		if ps[i] > ps[i-1] && ps[i] >= ps[i+1] {
			peaks = append(peaks, Peak{
				Bin:       i,
				Frequency: BinFrequency(i, len(values), sampleRate),
				Magnitude: ps[i],
			})
		}
	}
	sort.Slice(peaks, func(a, b int) bool {
		return peaks[a].Magnitude > peaks[b].Magnitude
	})
	if k >= 0 && len(peaks) > k {
		peaks = peaks[:k]
	}
	return peaks
}
