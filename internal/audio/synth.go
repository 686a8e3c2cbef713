// Package audio turns simulation events into short synthesized sound cues
// and a looping background track. All sounds are generated with beep
// streamers; no sample files are shipped.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that stops after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone is an enveloped oscillator note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero
// volume is rendered silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// fader passes a stream through and, once started, ramps it to silence and
// ends it.
type fader struct {
	streamer beep.Streamer
	fading   bool
	total    int // Fade length in samples
	left     int // Samples until silence
}

func newFader(s beep.Streamer) *fader {
	return &fader{streamer: s}
}

// FadeOut starts a linear ramp to silence lasting n samples.
func (f *fader) FadeOut(n int) {
	f.fading = true
	f.total = max(n, 1)
	f.left = max(n, 0)
}

// Done reports whether the fade has finished.
func (f *fader) Done() bool { return f.fading && f.left <= 0 }

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.Done() {
		return 0, false
	}

	n, ok = f.streamer.Stream(samples)
	if !f.fading {
		return n, ok
	}
	for i := 0; i < n; i++ {
		gain := float64(f.left) / float64(f.total)
		samples[i][0] *= gain
		samples[i][1] *= gain
		if f.left > 0 {
			f.left--
		}
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }

// loop replays a freshly built pattern each time the previous one drains.
// Patterns are generated rather than seeked, so it works with any streamer.
type loop struct {
	build func() beep.Streamer
	cur   beep.Streamer
}

func newLoop(build func() beep.Streamer) *loop {
	return &loop{build: build, cur: build()}
}

func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	empty := 0
	for n < len(samples) {
		got, more := l.cur.Stream(samples[n:])
		n += got
		if !more {
			l.cur = l.build()
		}
		if got == 0 {
			// A pattern that yields nothing twice in a row would spin.
			empty++
			if empty > 1 {
				return n, n > 0
			}
			continue
		}
		empty = 0
	}
	return n, true
}

func (l *loop) Err() error { return nil }
