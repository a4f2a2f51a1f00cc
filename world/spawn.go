package world

import (
	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/poison"
)

// SpawnConfig holds the cumulative probability bands for food types
type SpawnConfig struct {
	NormalBelow          float64
	SuspiciousBelow      float64
	ValuablePoisonChance float64
}

// DefaultSpawnConfig returns the stock bands: 60% Normal, 25% Suspicious, 15% Valuable
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		NormalBelow:          parameter.SpawnNormalBelow,
		SuspiciousBelow:      parameter.SpawnSuspiciousBelow,
		ValuablePoisonChance: parameter.SpawnValuablePoisonChance,
	}
}

// Spawner creates food items from one shared RNG
type Spawner struct {
	cfg SpawnConfig
	rng Rand
}

func NewSpawner(cfg SpawnConfig, rng Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Roll picks the type and poison of a new item without placing it
// Suspicious always carries a uniformly drawn kind; Valuable may carry Evolving
func (s *Spawner) Roll(p core.Point) Food {
	roll := s.rng.Float64()
	switch {
	case roll < s.cfg.NormalBelow:
		return NewFood(p, Normal)

	case roll < s.cfg.SuspiciousBelow:
		kinds := poison.Kinds()
		k := kinds[s.rng.Intn(len(kinds))]
		return NewFood(p, Suspicious).WithPoison(poison.MustCreate(k))

	default:
		f := NewFood(p, Valuable)
		if s.rng.Float64() < s.cfg.ValuablePoisonChance {
			f = f.WithPoison(poison.MustCreate(poison.Evolving))
		}
		return f
	}
}

// Spawn places one new item on a random free cell
// Returns false when the board has no free cell
func (s *Spawner) Spawn(g *Grid, blocked func(core.Point) bool) (Food, bool) {
	p, ok := g.RandomEmptyPosition(s.rng, blocked)
	if !ok {
		return Food{}, false
	}
	f := s.Roll(p)
	if err := g.PlaceFood(f); err != nil {
		return Food{}, false
	}
	return f, true
}
