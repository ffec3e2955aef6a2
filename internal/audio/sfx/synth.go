// Package sfx synthesizes the game's sound effects with beep and plays them
// through the system speaker.
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/blockshoot/internal/audio"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a tone whose frequency glides linearly from
// startFreq to endFreq over its duration.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewTone creates a fixed-frequency oscillator.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: from,
		endFreq:   to,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with attack/release shaping over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// shaped is a tone or sweep with an envelope applied.
func shaped(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewTone(from, d, wave, rate)
	if to != from {
		osc = NewSweep(from, to, d, wave, rate)
	}
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// CreateShotSound is a short falling square blip.
func CreateShotSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(shaped(990, 440, 70*time.Millisecond, WaveSquare, rate), vol*0.35)
}

// CreateStretchSound is a rising two-step sweep.
func CreateStretchSound(rate beep.SampleRate, vol float64) beep.Streamer {
	seq := beep.Seq(
		shaped(330, 520, 90*time.Millisecond, WaveTriangle, rate),
		shaped(520, 880, 120*time.Millisecond, WaveTriangle, rate),
	)
	return newVolume(seq, vol*0.6)
}

// CreateSubmitSound is a bell-like confirmation chime.
func CreateSubmitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := 160 * time.Millisecond
	mixed := beep.Mix(
		newVolume(shaped(880, 880, d, WaveSine, rate), 0.7),
		newVolume(shaped(1760, 1760, d, WaveSine, rate), 0.3),
	)
	return newVolume(mixed, vol*0.5)
}

// CreateSound returns a fresh streamer for s.
func CreateSound(s audio.Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch s {
	case audio.SoundShot:
		return CreateShotSound(rate, vol)
	case audio.SoundStretch:
		return CreateStretchSound(rate, vol)
	case audio.SoundSubmit:
		return CreateSubmitSound(rate, vol)
	default:
		return nil
	}
}
