// Package analysis measures what the beat simulation produces:
//
//   - [PowerSpectrum]: magnitude spectrum via go-dsp's FFT
//   - [DominantFrequencies]: strongest spectral peaks in Hz
//   - [Envelope]: running peak envelope of a waveform
//   - [EstimateBeat]: beat frequency read back from the envelope
//   - [ModulationDepth]: visibility of the beat pattern
//
// The measured beat should agree with |f2 - f1|:
//
//	w, bf := beats.Simulate(p)
//	measured := analysis.EstimateBeat(w.T, w.Values, math.Min(p.F1, p.F2))
package analysis
