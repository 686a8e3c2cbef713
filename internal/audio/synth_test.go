package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

// ones streams a constant full-scale signal forever.
var ones = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
})

// drain streams s to the end and returns the sample count, giving up after
// limit samples.
func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, testRate)
		if n := drain(osc, 10000); n != 480 {
			t.Errorf("wave %d: streamed %d samples, expected 480", wave, n)
		}
	}
}

func TestOscillatorRange(t *testing.T) {
	buf := make([][2]float64, 480)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, testRate)
		n, _ := osc.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("wave %d sample %d = %v out of range", wave, i, buf[i])
			}
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	osc := NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate)
	env := NewEnvelope(osc, 10*time.Millisecond, time.Millisecond, 2*time.Millisecond, testRate)

	buf := make([][2]float64, 480)
	n, _ := env.Stream(buf)
	if n != 480 {
		t.Fatalf("streamed %d samples, expected 480", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected silent attack start", buf[0][0])
	}
	if buf[240][0] != 1 {
		t.Errorf("sustain sample = %v, expected 1", buf[240][0])
	}
	if buf[479][0] <= 0 || buf[479][0] > 0.05 {
		t.Errorf("last sample = %v, expected near-silent release", buf[479][0])
	}
}

func TestNewVolume(t *testing.T) {
	buf := make([][2]float64, 16)

	silent := newVolume(beep.Take(16, ones), 0)
	silent.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("zero volume sample = %v, expected 0", buf[0][0])
	}

	half := newVolume(beep.Take(16, ones), 0.5)
	half.Stream(buf)
	if math.Abs(buf[0][0]-0.5) > 1e-9 {
		t.Errorf("half volume sample = %v, expected 0.5", buf[0][0])
	}
}

func TestFader(t *testing.T) {
	f := newFader(ones)
	buf := make([][2]float64, 100)

	f.Stream(buf)
	if buf[99][0] != 1 {
		t.Error("fader should pass audio through before FadeOut")
	}

	f.FadeOut(100)
	n, ok := f.Stream(buf)
	if n != 100 || !ok {
		t.Fatalf("fade stream = (%d, %v)", n, ok)
	}
	if buf[0][0] != 1 || buf[50][0] != 0.5 {
		t.Errorf("fade ramp wrong: first %v mid %v", buf[0][0], buf[50][0])
	}
	if !f.Done() {
		t.Error("fade should be done after its length")
	}
	if n, ok := f.Stream(buf); n != 0 || ok {
		t.Errorf("finished fader streamed (%d, %v), expected end", n, ok)
	}
}

func TestFaderImmediate(t *testing.T) {
	f := newFader(ones)
	f.FadeOut(0)
	if n, ok := f.Stream(make([][2]float64, 8)); n != 0 || ok {
		t.Errorf("immediate fade streamed (%d, %v)", n, ok)
	}
}

func TestLoopNeverEnds(t *testing.T) {
	builds := 0
	l := newLoop(func() beep.Streamer {
		builds++
		return NewOscillator(440, time.Millisecond, WaveSquare, testRate)
	})

	buf := make([][2]float64, 1000)
	for i := range 5 {
		n, ok := l.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("pass %d: streamed (%d, %v)", i, n, ok)
		}
	}
	if builds < 100 {
		t.Errorf("expected the pattern to be rebuilt, got %d builds", builds)
	}
}

func TestLoopEmptyPattern(t *testing.T) {
	l := newLoop(func() beep.Streamer { return beep.Silence(0) })
	if n, ok := l.Stream(make([][2]float64, 16)); n != 0 || ok {
		t.Errorf("empty pattern streamed (%d, %v), expected end", n, ok)
	}
}
