// Package config loads game settings: compiled defaults, then an optional TOML
// file, then SNAKE_POISON_* environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/snake-poison/parameter"
)

var ErrInvalidConfig = errors.New("invalid config")

// Duration decodes TOML strings such as "150ms" or "3s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type GridConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Obstacles are [x, y] pairs
	Obstacles [][2]int `toml:"obstacles"`
}

type TickConfig struct {
	Interval Duration `toml:"interval"`
	// Impulsive jitter bounds, half-open [JitterMin, JitterMax)
	JitterMin    Duration `toml:"jitter_min"`
	JitterMax    Duration `toml:"jitter_max"`
	JitterChance float64  `toml:"jitter_chance"`
}

type SnakeConfig struct {
	InitialLength int `toml:"initial_length"`
	// Negative start coordinates place the head at the grid center
	StartX int `toml:"start_x"`
	StartY int `toml:"start_y"`
}

type SpawnConfig struct {
	NormalBelow          float64 `toml:"normal_below"`
	SuspiciousBelow      float64 `toml:"suspicious_below"`
	ValuablePoisonChance float64 `toml:"valuable_poison_chance"`
	FoodCount            int     `toml:"food_count"`
}

type EvolutionConfig struct {
	StageInterval Duration `toml:"stage_interval"`
}

type WorldConfig struct {
	// Adaptive enables per-tick difficulty and style evolution
	Adaptive bool `toml:"adaptive"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
	// EffectVolumes keys: eat, poison, death, evolve, unlock
	EffectVolumes map[string]float64 `toml:"effect_volumes"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// KeysConfig overrides default bindings with action names
// Runes keys are single characters or "space"; Special keys are tcell names such as "Up" or "F1"
type KeysConfig struct {
	Runes   map[string]string `toml:"runes"`
	Special map[string]string `toml:"special"`
}

// Config is the complete settings tree
type Config struct {
	// Seed drives every random draw; zero picks a time-based seed at startup
	Seed uint64 `toml:"seed"`

	Grid      GridConfig      `toml:"grid"`
	Tick      TickConfig      `toml:"tick"`
	Snake     SnakeConfig     `toml:"snake"`
	Spawn     SpawnConfig     `toml:"spawn"`
	Evolution EvolutionConfig `toml:"evolution"`
	World     WorldConfig     `toml:"world"`
	Audio     AudioConfig     `toml:"audio"`
	History   HistoryConfig   `toml:"history"`
	Keys      KeysConfig      `toml:"keys"`
}

// Default returns the compiled-in settings
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  parameter.DefaultGridWidth,
			Height: parameter.DefaultGridHeight,
		},
		Tick: TickConfig{
			Interval:     Duration{parameter.GameUpdateInterval},
			JitterMin:    Duration{parameter.ImpulsiveMinInterval},
			JitterMax:    Duration{parameter.ImpulsiveMaxInterval},
			JitterChance: parameter.ImpulsiveJitterChance,
		},
		Snake: SnakeConfig{
			InitialLength: parameter.SnakeInitialLength,
			StartX:        -1,
			StartY:        -1,
		},
		Spawn: SpawnConfig{
			NormalBelow:          parameter.SpawnNormalBelow,
			SuspiciousBelow:      parameter.SpawnSuspiciousBelow,
			ValuablePoisonChance: parameter.SpawnValuablePoisonChance,
			FoodCount:            parameter.SpawnFoodCount,
		},
		Evolution: EvolutionConfig{
			StageInterval: Duration{parameter.EvolutionStageInterval},
		},
		World: WorldConfig{Adaptive: true},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
			EffectVolumes: map[string]float64{
				"eat":    parameter.AudioEatVolume,
				"poison": parameter.AudioPoisonVolume,
				"death":  parameter.AudioDeathVolume,
				"evolve": parameter.AudioEvolveVolume,
				"unlock": parameter.AudioUnlockVolume,
			},
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    parameter.HistoryFileName,
		},
	}
}

// Load decodes a TOML file over the defaults
// Keys the file sets but the schema lacks are logged and ignored
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("config %s: ignoring unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Grid.Width > parameter.MaxGridDimension || c.Grid.Height > parameter.MaxGridDimension:
		return fmt.Errorf("%w: grid %dx%d exceeds %d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height, parameter.MaxGridDimension)
	case c.Tick.Interval.Duration < parameter.MinTickInterval || c.Tick.Interval.Duration > parameter.MaxTickInterval:
		return fmt.Errorf("%w: tick interval %v outside [%v, %v]", ErrInvalidConfig, c.Tick.Interval, parameter.MinTickInterval, parameter.MaxTickInterval)
	case c.Tick.JitterMin.Duration <= 0 || c.Tick.JitterMax.Duration <= c.Tick.JitterMin.Duration:
		return fmt.Errorf("%w: jitter range [%v, %v) is empty", ErrInvalidConfig, c.Tick.JitterMin, c.Tick.JitterMax)
	case c.Tick.JitterChance < 0 || c.Tick.JitterChance > 1:
		return fmt.Errorf("%w: jitter chance %v outside [0, 1]", ErrInvalidConfig, c.Tick.JitterChance)
	case c.Snake.InitialLength < 1 || c.Snake.InitialLength > parameter.SnakeMaxInitialLength:
		return fmt.Errorf("%w: initial length %d outside [1, %d]", ErrInvalidConfig, c.Snake.InitialLength, parameter.SnakeMaxInitialLength)
	case c.Snake.InitialLength > c.Grid.Width:
		return fmt.Errorf("%w: initial length %d does not fit grid width %d", ErrInvalidConfig, c.Snake.InitialLength, c.Grid.Width)
	case c.Spawn.NormalBelow < 0 || c.Spawn.NormalBelow > c.Spawn.SuspiciousBelow || c.Spawn.SuspiciousBelow > 1:
		return fmt.Errorf("%w: spawn bands %v/%v out of order", ErrInvalidConfig, c.Spawn.NormalBelow, c.Spawn.SuspiciousBelow)
	case c.Spawn.ValuablePoisonChance < 0 || c.Spawn.ValuablePoisonChance > 1:
		return fmt.Errorf("%w: valuable poison chance %v outside [0, 1]", ErrInvalidConfig, c.Spawn.ValuablePoisonChance)
	case c.Spawn.FoodCount < 0:
		return fmt.Errorf("%w: food count %d is negative", ErrInvalidConfig, c.Spawn.FoodCount)
	case c.Evolution.StageInterval.Duration <= 0:
		return fmt.Errorf("%w: stage interval %v must be positive", ErrInvalidConfig, c.Evolution.StageInterval)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master volume %v outside [0, 1]", ErrInvalidConfig, c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidConfig, c.Audio.SampleRate)
	}

	for _, o := range c.Grid.Obstacles {
		if o[0] < 0 || o[0] >= c.Grid.Width || o[1] < 0 || o[1] >= c.Grid.Height {
			return fmt.Errorf("%w: obstacle (%d,%d) outside grid", ErrInvalidConfig, o[0], o[1])
		}
	}
	return nil
}
