// Package audio plays a two-tone superposition through the default output
// device so the beat can be heard as well as plotted.
package audio

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/wavelab/internal/beats"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// DefaultVolume keeps the summed tones well clear of clipping.
	DefaultVolume = 0.25
)

// Synth generates A1*sin(2πf1t) + A2*sin(2πf2t) sample by sample, scaled so
// the largest possible peak equals Volume.
type Synth struct {
	mu     sync.Mutex
	params beats.Params
	volume float64
	gain   float64
	n      int64
}

func NewSynth(p beats.Params, volume float64) *Synth {
	s := &Synth{params: p, volume: volume}
	peak := math.Abs(p.A1) + math.Abs(p.A2)
	if peak > 0 {
		s.gain = volume / peak
	}
	return s
}

// Time is the playback position in seconds.
func (s *Synth) Time() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.n) / SampleRate
}

// Fill writes the next len(out) mono samples.
func (s *Synth) Fill(out []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.params
	for i := range out {
		t := float64(s.n) / SampleRate
		v := p.A1*math.Sin(2*math.Pi*p.F1*t) + p.A2*math.Sin(2*math.Pi*p.F2*t)
		out[i] = float32(v * s.gain)
		s.n++
	}
}

// Player streams a Synth to the default output device.
type Player struct {
	synth *Synth
}

func NewPlayer(p beats.Params, volume float64) *Player {
	return &Player{synth: NewSynth(p, volume)}
}

// Play blocks until duration elapses or ctx is cancelled.
func (pl *Player) Play(ctx context.Context, duration time.Duration) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize audio: %w", err)
	}
	defer portaudio.Terminate()

	// Output only; duplex streams often fail on Linux when devices differ.
	stream, err := portaudio.OpenDefaultStream(0, 1, SampleRate, BufferSize, pl.synth.Fill)
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start stream: %w", err)
	}
	log.WithFields(log.Fields{
		"f1":       pl.synth.params.F1,
		"f2":       pl.synth.params.F2,
		"duration": duration,
	}).Debug("Audio started")

	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}

	if err := stream.Stop(); err != nil {
		return fmt.Errorf("failed to stop stream: %w", err)
	}
	log.WithField("played", time.Duration(pl.synth.Time()*float64(time.Second))).Debug("Audio stopped")
	return ctx.Err()
}
