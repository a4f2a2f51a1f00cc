package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/snake-poison/parameter"
)

// Sound effect generators, all at unit gain; the manager applies volume

// createEatSound is a short sine chirp falling an octave
func createEatSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.EatSoundDuration
	osc := NewSweep(parameter.EatSoundFrequency, parameter.EatSoundFrequency/2, d, WaveSine, rate)
	return NewEnvelope(osc, d, parameter.EatSoundAttack, parameter.EatSoundRelease, rate)
}

// createPoisonSound is a low square tone with a fast tremolo
func createPoisonSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.PoisonSoundDuration
	osc := NewOscillator(parameter.PoisonSoundFrequency, d, WaveSquare, rate)
	wobble := NewTremolo(osc, parameter.PoisonSoundTremolo, 0.8, d, rate)
	return newVolume(NewEnvelope(wobble, d, parameter.PoisonSoundAttack, parameter.PoisonSoundRelease, rate), 0.5)
}

// createDeathSound is a falling saw mixed with noise under an exponential decay
func createDeathSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.DeathSoundDuration
	tone := NewSweep(parameter.DeathSoundFrequency, parameter.DeathSoundFrequency/4, d, WaveSaw, rate)
	noise := NewOscillator(0, d, WaveNoise, rate)
	mixed := beep.Mix(
		newVolume(tone, 1-parameter.DeathSoundNoise),
		newVolume(noise, parameter.DeathSoundNoise),
	)
	return NewDecay(mixed, d, rate)
}

// createEvolveSound is a rising sine sweep under a half-sine swell
func createEvolveSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.EvolveSoundDuration
	osc := NewSweep(parameter.EvolveSoundFrequency, parameter.EvolveSoundFrequency*2, d, WaveSine, rate)
	return NewSwell(osc, d, rate)
}

// createUnlockSound is a two-note chime
// Falls back to square oscillators if the generator rejects the rate
func createUnlockSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.UnlockSoundNoteDuration
	note := func(freq float64) beep.Streamer {
		var src beep.Streamer
		if tone, err := generators.SineTone(rate, freq); err == nil {
			src = beep.Take(rate.N(d), tone)
		} else {
			src = NewOscillator(freq, d, WaveSquare, rate)
		}
		return NewEnvelope(src, d, parameter.UnlockSoundAttack, parameter.UnlockSoundRelease, rate)
	}
	return beep.Seq(note(parameter.UnlockSoundNote1), note(parameter.UnlockSoundNote2))
}

// createSound returns the unit-gain streamer for a sound type, nil if unknown
func createSound(t SoundType, rate beep.SampleRate) beep.Streamer {
	switch t {
	case SoundEat:
		return createEatSound(rate)
	case SoundPoison:
		return createPoisonSound(rate)
	case SoundDeath:
		return createDeathSound(rate)
	case SoundEvolve:
		return createEvolveSound(rate)
	case SoundUnlock:
		return createUnlockSound(rate)
	default:
		return nil
	}
}
