package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/spike-runner/internal/core"
)

// Config holds mixer settings. Volumes are linear, 0..1.
type Config struct {
	SampleRate    int
	MasterVolume  float64
	EffectsVolume float64
	MusicVolume   float64
	Music         bool
	FadeOut       time.Duration // Music fade after a run ends
}

// DefaultConfig returns the standard mix.
func DefaultConfig() Config {
	return Config{
		SampleRate:    44100,
		MasterVolume:  0.8,
		EffectsVolume: 0.7,
		MusicVolume:   0.25,
		Music:         true,
		FadeOut:       600 * time.Millisecond,
	}
}

// SoundManager plays cues for simulation events. Every method is safe to
// call before Initialize or after a failed Initialize; sounds are dropped.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	music       *fader
	lock        sync.Locker // Guards streamers the speaker is reading
	initialized bool
}

// NewSoundManager creates a sound manager with the given settings.
func NewSoundManager(cfg Config) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		lock:  noLock{},
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.lock = speakerLock{}
	sm.initialized = true
	return nil
}

// Cleanup silences everything and stops accepting sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock.Lock()
	sm.mixer.Clear()
	sm.lock.Unlock()

	sm.music = nil
	sm.initialized = false
}

// HandleEvents plays the cue for each event of a tick. A run start also
// restarts the music; the end of a run fades it out.
func (sm *SoundManager) HandleEvents(events []core.Event) {
	if len(events) == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock.Lock()
	defer sm.lock.Unlock()

	for _, e := range events {
		switch e {
		case core.EventRunStarted:
			sm.startMusic()
		case core.EventHazardHit, core.EventGoalReached:
			sm.fadeMusic()
		}
		if st := CreateSound(SoundForEvent(e), sm.cfg); st != nil {
			sm.mixer.Add(st)
		}
	}
}

// Play plays a single cue.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if st := CreateSound(s, sm.cfg); st != nil {
		sm.lock.Lock()
		sm.mixer.Add(st)
		sm.lock.Unlock()
	}
}

// startMusic replaces any playing track with a fresh one.
// Callers hold both locks.
func (sm *SoundManager) startMusic() {
	if !sm.cfg.Music {
		return
	}
	if sm.music != nil {
		sm.music.FadeOut(0)
	}
	sm.music = newFader(NewMusic(sm.cfg))
	sm.mixer.Add(sm.music)
}

// fadeMusic ramps the current track out. Callers hold both locks.
func (sm *SoundManager) fadeMusic() {
	if sm.music == nil {
		return
	}
	sm.music.FadeOut(beep.SampleRate(sm.cfg.SampleRate).N(sm.cfg.FadeOut))
	sm.music = nil
}

// speakerLock serializes with the speaker's playback goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// noLock is used until the speaker is running.
type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}
