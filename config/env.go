package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// Environment variable names
const (
	EnvPrefix       = "SNAKE_POISON_"
	EnvSeed         = EnvPrefix + "SEED"
	EnvWidth        = EnvPrefix + "WIDTH"
	EnvHeight       = EnvPrefix + "HEIGHT"
	EnvTick         = EnvPrefix + "TICK"
	EnvAudioEnabled = EnvPrefix + "AUDIO_ENABLED"
	EnvMasterVolume = EnvPrefix + "MASTER_VOLUME"
	EnvSFXVolumes   = EnvPrefix + "SFX_VOLUMES"
	EnvSampleRate   = EnvPrefix + "SAMPLE_RATE"
	EnvHistory      = EnvPrefix + "HISTORY"
)

// ApplyEnv overrides fields from SNAKE_POISON_* variables
// Unparsable values are skipped, leaving the previous setting
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v, ok := os.LookupEnv(EnvWidth); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Grid.Width = n
		}
	}
	if v, ok := os.LookupEnv(EnvHeight); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Grid.Height = n
		}
	}
	if v, ok := os.LookupEnv(EnvTick); ok {
		if d, err := time.ParseDuration(v); err == nil {
			c.Tick.Interval.Duration = d
		}
	}

	if v, ok := os.LookupEnv(EnvAudioEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}

	// Master volume is given as 0-100
	if v, ok := os.LookupEnv(EnvMasterVolume); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(1, max(0, float64(n)/100.0))
		}
	}

	// Per-effect volumes as a JSON object, e.g. {"eat":0.4,"death":1}
	if v, ok := os.LookupEnv(EnvSFXVolumes); ok {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if c.Audio.EffectVolumes == nil {
				c.Audio.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for k, vol := range volumes {
				c.Audio.EffectVolumes[k] = vol
			}
		}
	}

	if v, ok := os.LookupEnv(EnvSampleRate); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Audio.SampleRate = n
		}
	}

	// Empty string disables history
	if v, ok := os.LookupEnv(EnvHistory); ok {
		c.History.Path = v
		c.History.Enabled = v != ""
	}
}
