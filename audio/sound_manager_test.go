package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/snake-poison/config"
	"github.com/lixenwraith/snake-poison/parameter"
)

func testAudioConfig(enabled bool) config.AudioConfig {
	cfg := config.Default().Audio
	cfg.Enabled = enabled
	return cfg
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(testAudioConfig(true))

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for s := SoundType(0); s < soundTypeCount; s++ {
		sm.Play(s)
	}
	sm.Play(SoundType(99))
	sm.Cleanup()

	if sm.IsInitialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

func TestSoundManagerDisabled(t *testing.T) {
	sm := NewSoundManager(testAudioConfig(false))

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if !sm.IsMuted() {
		t.Error("Expected disabled audio to start muted")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(testAudioConfig(true))

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Play(SoundEat)
	sm.Cleanup()
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(testAudioConfig(true))

	if sm.IsMuted() {
		t.Fatal("Expected enabled audio to start unmuted")
	}
	if !sm.ToggleMute() {
		t.Error("Expected ToggleMute to report muted")
	}
	sm.SetMuted(false)
	if sm.IsMuted() {
		t.Error("Expected SetMuted(false) to unmute")
	}
}

func TestSoundManagerVolume(t *testing.T) {
	cfg := testAudioConfig(true)
	cfg.MasterVolume = 0.5
	cfg.EffectVolumes = map[string]float64{"eat": 0.4}
	sm := NewSoundManager(cfg)

	if v := sm.Volume(SoundEat); math.Abs(v-0.2) > 1e-9 {
		t.Errorf("Expected eat volume 0.2, got %f", v)
	}
	// Missing keys fall back to compiled defaults
	if v := sm.Volume(SoundDeath); math.Abs(v-parameter.AudioDeathVolume*0.5) > 1e-9 {
		t.Errorf("Expected default death volume, got %f", v)
	}
}

func TestSoundStreams(t *testing.T) {
	sm := NewSoundManager(testAudioConfig(true))
	rate := beep.SampleRate(parameter.AudioSampleRate)

	expectedLen := map[SoundType]int{
		SoundEat:    rate.N(parameter.EatSoundDuration),
		SoundEvolve: rate.N(parameter.EvolveSoundDuration),
		SoundUnlock: 2 * rate.N(parameter.UnlockSoundNoteDuration),
	}

	for s := SoundType(0); s < soundTypeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			st, err := sm.Stream(s)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			samples := drain(st)
			if len(samples) == 0 {
				t.Fatal("Expected non-empty sound")
			}
			if want, ok := expectedLen[s]; ok && len(samples) != want {
				t.Errorf("Expected %d samples, got %d", want, len(samples))
			}
			peak := 0.0
			for _, v := range samples {
				peak = max(peak, math.Abs(v[0]), math.Abs(v[1]))
			}
			if peak == 0 || peak > 1.0+1e-9 {
				t.Errorf("Expected peak in (0, 1], got %f", peak)
			}
		})
	}

	if _, err := sm.Stream(soundTypeCount); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}
}

func TestSoundTypeString(t *testing.T) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		if _, ok := config.Default().Audio.EffectVolumes[s.String()]; !ok {
			t.Errorf("Expected default volume for %q", s)
		}
	}
	if SoundType(-1).String() != "unknown" {
		t.Error("Expected unknown for out of range type")
	}
}

func TestServiceDisabledConfig(t *testing.T) {
	svc := NewService(testAudioConfig(false), false)

	if err := svc.Init(); err != nil {
		t.Fatalf("Expected Init to degrade, got %v", err)
	}
	if !svc.IsDisabled() {
		t.Error("Expected service disabled")
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Expected clean Stop, got %v", err)
	}
	if svc.Handler() == nil {
		t.Error("Expected a handler even when disabled")
	}
}

func TestServiceStartsMuted(t *testing.T) {
	svc := NewService(testAudioConfig(true), true)
	if !svc.Manager().IsMuted() {
		t.Error("Expected muted manager")
	}
}
