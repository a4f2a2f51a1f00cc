package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snake-poison/config"
	"github.com/lixenwraith/snake-poison/parameter"
)

// maxVoices caps simultaneous effects in the mixer
const maxVoices = 8

// SoundManager manages all game audio
// Every method is safe to call before Initialize or after a failed init
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = parameter.AudioSampleRate
	}
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(rate),
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize sets up the speaker; a disabled config returns ErrAudioDisabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz", sm.rate)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// The speaker itself stays open; beep only supports one Init per process
	sm.initialized = false
}

// IsInitialized reports whether the speaker is playing the mixer
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences new effects without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Volume returns the effective gain of a sound: effect volume times master volume
func (sm *SoundManager) Volume(t SoundType) float64 {
	vol, ok := sm.cfg.EffectVolumes[t.String()]
	if !ok {
		vol = defaultVolume(t)
	}
	return vol * sm.cfg.MasterVolume
}

// Stream builds the volume-adjusted streamer for a sound type
func (sm *SoundManager) Stream(t SoundType) (beep.Streamer, error) {
	s := createSound(t, sm.rate)
	if s == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, t)
	}
	return newVolume(s, sm.Volume(t)), nil
}

// Play queues a sound effect on the mixer, dropped when muted, uninitialized or saturated
func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s, err := sm.Stream(t)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(s)
	}
	speaker.Unlock()
}

func defaultVolume(t SoundType) float64 {
	switch t {
	case SoundEat:
		return parameter.AudioEatVolume
	case SoundPoison:
		return parameter.AudioPoisonVolume
	case SoundDeath:
		return parameter.AudioDeathVolume
	case SoundEvolve:
		return parameter.AudioEvolveVolume
	case SoundUnlock:
		return parameter.AudioUnlockVolume
	default:
		return 0
	}
}
