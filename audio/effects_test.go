package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := drain(osc)

		if len(samples) != rate.N(50*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(50*time.Millisecond), len(samples))
		}
		for i, s := range samples {
			if s[0] < -1.0 || s[0] > 1.0 || s[0] != s[1] {
				t.Errorf("Wave %d: sample %d out of range or not mono: %v", wave, i, s)
				break
			}
		}
	}
}

func TestOscillatorDrainedReturnsFalse(t *testing.T) {
	osc := NewOscillator(440, time.Millisecond, WaveSine, beep.SampleRate(44100))
	drain(osc)

	n, ok := osc.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("Expected (0, false) after drain, got (%d, %v)", n, ok)
	}
}

// TestSweepGlides counts zero crossings: a rising sweep crosses more often in its second half
func TestSweepGlides(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(NewSweep(200, 2000, 200*time.Millisecond, WaveSine, rate))

	crossings := func(part [][2]float64) int {
		c := 0
		for i := 1; i < len(part); i++ {
			if (part[i-1][0] < 0) != (part[i][0] < 0) {
				c++
			}
		}
		return c
	}
	half := len(samples) / 2
	first, second := crossings(samples[:half]), crossings(samples[half:])
	if second <= first {
		t.Errorf("Expected more crossings in second half, got %d then %d", first, second)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // phase stays 0, constant +1
	samples := drain(NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate))

	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[85][0] {
		t.Errorf("Expected release to fade, got %f then %f", samples[85][0], samples[99][0])
	}
}

func TestGainShapes(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	constant := func() beep.Streamer { return NewOscillator(0, d, WaveSquare, rate) }

	decay := drain(NewDecay(constant(), d, rate))
	if decay[0][0] != 1 {
		t.Errorf("Expected decay to start at 1, got %f", decay[0][0])
	}
	for i := 1; i < len(decay); i++ {
		if decay[i][0] >= decay[i-1][0] {
			t.Fatalf("Expected strictly falling decay at %d", i)
		}
	}

	swell := drain(NewSwell(constant(), d, rate))
	if swell[0][0] != 0 {
		t.Errorf("Expected swell to start silent, got %f", swell[0][0])
	}
	if math.Abs(swell[50][0]-1) > 1e-9 {
		t.Errorf("Expected swell peak at midpoint, got %f", swell[50][0])
	}

	trem := drain(NewTremolo(constant(), 10, 1, d, rate))
	lo, hi := 1.0, 0.0
	for _, s := range trem {
		lo, hi = min(lo, s[0]), max(hi, s[0])
	}
	if lo > 0.05 || hi < 0.95 {
		t.Errorf("Expected full-depth tremolo range, got [%f, %f]", lo, hi)
	}
}

func TestNewVolume(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := func() beep.Streamer { return NewOscillator(0, 10*time.Millisecond, WaveSquare, rate) }

	half := drain(newVolume(src(), 0.5))
	if math.Abs(half[3][0]-0.5) > 1e-9 {
		t.Errorf("Expected 0.5 gain, got %f", half[3][0])
	}

	silent := drain(newVolume(src(), 0))
	for _, s := range silent {
		if s[0] != 0 {
			t.Fatalf("Expected silence, got %f", s[0])
		}
	}
}
