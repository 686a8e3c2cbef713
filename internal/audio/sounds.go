package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/spike-runner/internal/core"
)

// Sound identifies a one-shot cue.
type Sound int

const (
	SoundNone Sound = iota
	SoundStart
	SoundJump
	SoundCrash
	SoundGoal
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundJump:
		return "jump"
	case SoundCrash:
		return "crash"
	case SoundGoal:
		return "goal"
	default:
		return "none"
	}
}

// SoundForEvent maps a simulation event to its cue.
func SoundForEvent(e core.Event) Sound {
	switch e {
	case core.EventRunStarted:
		return SoundStart
	case core.EventJump:
		return SoundJump
	case core.EventHazardHit:
		return SoundCrash
	case core.EventGoalReached:
		return SoundGoal
	default:
		return SoundNone
	}
}

// Note frequencies (Hz)
const (
	noteC3 = 130.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteF3 = 174.61
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// CreateSound builds a fresh streamer for the cue at the effects volume.
// SoundNone yields nil.
func CreateSound(s Sound, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var st beep.Streamer
	switch s {
	case SoundStart:
		noise := NewOscillator(0, 180*time.Millisecond, WaveNoise, rate)
		st = newVolume(NewEnvelope(noise, 180*time.Millisecond, 60*time.Millisecond, 100*time.Millisecond, rate), 0.4)
	case SoundJump:
		st = beep.Seq(
			tone(noteC5, 40*time.Millisecond, WaveSquare, rate),
			tone(noteG5, 60*time.Millisecond, WaveSquare, rate),
		)
	case SoundCrash:
		noise := NewOscillator(0, 350*time.Millisecond, WaveNoise, rate)
		rumble := NewOscillator(70, 350*time.Millisecond, WaveSaw, rate)
		st = beep.Mix(
			newVolume(NewEnvelope(noise, 350*time.Millisecond, 2*time.Millisecond, 300*time.Millisecond, rate), 0.6),
			newVolume(NewEnvelope(rumble, 350*time.Millisecond, 2*time.Millisecond, 250*time.Millisecond, rate), 0.5),
		)
	case SoundGoal:
		st = beep.Seq(
			tone(noteC5, 90*time.Millisecond, WaveSine, rate),
			tone(noteE5, 90*time.Millisecond, WaveSine, rate),
			tone(noteG5, 90*time.Millisecond, WaveSine, rate),
			tone(noteC6, 240*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}

	return newVolume(st, cfg.EffectsVolume*cfg.MasterVolume)
}

// musicBar builds one bar of the background bass line.
func musicBar(rate beep.SampleRate) beep.Streamer {
	const step = 150 * time.Millisecond
	pattern := []float64{noteC3, noteC3, noteG3, noteC3, noteA3, noteA3, noteF3, noteG3}

	notes := make([]beep.Streamer, 0, len(pattern))
	for _, f := range pattern {
		notes = append(notes, tone(f, step, WaveSquare, rate))
	}
	return beep.Seq(notes...)
}

// NewMusic creates the endless background track at the music volume.
func NewMusic(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	track := newLoop(func() beep.Streamer { return musicBar(rate) })
	return newVolume(track, cfg.MusicVolume*cfg.MasterVolume)
}
