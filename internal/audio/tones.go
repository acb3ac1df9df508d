// Package audio synthesizes the short sound effects played on eat and crash.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate used for all generated sounds.
const SampleRate = beep.SampleRate(44100)

const (
	eatDuration   = 90 * time.Millisecond
	crashDuration = 350 * time.Millisecond
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// sweep is an oscillator whose frequency glides linearly from one pitch to
// another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
}

// NewSweep returns a finite streamer gliding from one frequency to another.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, wave: wave, rate: rate, duration: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		default:
			val = math.Sin(2 * math.Pi * s.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fade applies a linear release over the last part of a stream.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

// NewFade shapes s so it ramps to silence over the final release window.
func NewFade(s beep.Streamer, total, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(total), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			vol := float64(f.total-f.position) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s by a linear factor; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// EatSound is a short rising blip.
func EatSound(vol float64) beep.Streamer {
	osc := NewSweep(660, 1320, eatDuration, WaveSine, SampleRate)
	return withVolume(NewFade(osc, eatDuration, 30*time.Millisecond, SampleRate), vol)
}

// CrashSound is a falling square-wave buzz.
func CrashSound(vol float64) beep.Streamer {
	osc := NewSweep(220, 55, crashDuration, WaveSquare, SampleRate)
	return withVolume(NewFade(osc, crashDuration, 150*time.Millisecond, SampleRate), vol*0.6)
}
