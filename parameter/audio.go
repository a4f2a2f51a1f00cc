package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.5
)

// Eat Sound: falling sine chirp
const (
	EatSoundDuration  = 100 * time.Millisecond
	EatSoundFrequency = 800.0
	EatSoundAttack    = 2 * time.Millisecond
	EatSoundRelease   = 40 * time.Millisecond
)

// Poison Sound: low tone with 30Hz tremolo
const (
	PoisonSoundDuration  = 250 * time.Millisecond
	PoisonSoundFrequency = 150.0
	PoisonSoundTremolo   = 30.0
	PoisonSoundAttack    = 5 * time.Millisecond
	PoisonSoundRelease   = 120 * time.Millisecond
)

// Death Sound: falling tone plus noise, exponential decay
const (
	DeathSoundDuration  = 400 * time.Millisecond
	DeathSoundFrequency = 200.0
	DeathSoundNoise     = 0.3
)

// Evolve Sound: rising sweep under a half-sine swell
const (
	EvolveSoundDuration  = 350 * time.Millisecond
	EvolveSoundFrequency = 500.0
)

// Unlock Sound: two-note chime
const (
	UnlockSoundNoteDuration = 120 * time.Millisecond
	UnlockSoundNote1        = 987.77  // B5
	UnlockSoundNote2        = 1318.51 // E6
	UnlockSoundAttack       = 5 * time.Millisecond
	UnlockSoundRelease      = 60 * time.Millisecond
)

// Default per-effect volumes, multiplied by the master volume
const (
	AudioEatVolume    = 0.6
	AudioPoisonVolume = 0.8
	AudioDeathVolume  = 1.0
	AudioEvolveVolume = 0.7
	AudioUnlockVolume = 0.9
)
