package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat    SoundType = iota // Plain food
	SoundPoison                  // Poison picked up
	SoundDeath                   // Collision
	SoundEvolve                  // Evolving stage reached
	SoundUnlock                  // Ability unlocked
	soundTypeCount
)

// soundNames doubles as the config.AudioConfig.EffectVolumes key set
var soundNames = [soundTypeCount]string{
	SoundEat:    "eat",
	SoundPoison: "poison",
	SoundDeath:  "death",
	SoundEvolve: "evolve",
	SoundUnlock: "unlock",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
	ErrUnknownSound  = errors.New("unknown sound type")
)
