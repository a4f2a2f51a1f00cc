package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/evolution"
	"github.com/lixenwraith/snake-poison/poison"
	"github.com/lixenwraith/snake-poison/snake"
	"github.com/lixenwraith/snake-poison/world"
)

// PoisonView is a read-only copy of one active poison
type PoisonView struct {
	Kind      poison.Kind
	Intensity float64
	Remaining time.Duration
	Permanent bool
	Stage     int
}

// Snapshot is an immutable copy of everything a front-end draws
type Snapshot struct {
	Phase    Phase
	Tick     int64
	Seed     uint64
	Interval time.Duration

	Width     int
	Height    int
	Obstacles []core.Point
	Foods     []world.Food

	Body    []core.Point // head first
	Heading core.Direction
	Label   snake.Label
	Poisons []PoisonView

	Abilities []evolution.Ability

	Difficulty     float64
	Style          world.Style
	RiskPreference float64

	TotalMoves   int
	MaxLength    int
	PoisonsTaken int
	FoodEaten    int
	LifeSpan     time.Duration

	// Message is the latest narrative line (evolution stage, unlock, death)
	Message    string
	DeathCause string
	Story      string // set once the game is over
}

// Head returns the head cell, or false for an empty body
func (s Snapshot) Head() (core.Point, bool) {
	if len(s.Body) == 0 {
		return core.Point{}, false
	}
	return s.Body[0], true
}

// HasPoison reports whether any instance of kind is active
func (s Snapshot) HasPoison(k poison.Kind) bool {
	return slices.ContainsFunc(s.Poisons, func(p PoisonView) bool { return p.Kind == k })
}

// Intensity returns the strongest active intensity of kind, or 0
func (s Snapshot) Intensity(k poison.Kind) float64 {
	var v float64
	for _, p := range s.Poisons {
		if p.Kind == k && p.Intensity > v {
			v = p.Intensity
		}
	}
	return v
}

// Score is the length gained over the starting body
func (s Snapshot) Score(initial int) int {
	return max(0, s.MaxLength-initial)
}

func (g *Game) snapshotLocked() Snapshot {
	now := g.clock.Now()
	traj := g.snake.Trajectory()

	active := g.snake.ActivePoisons()
	views := make([]PoisonView, len(active))
	for i, ap := range active {
		views[i] = PoisonView{
			Kind:      ap.Kind,
			Intensity: ap.Intensity,
			Remaining: ap.Remaining,
			Permanent: ap.Permanent,
			Stage:     ap.Stage,
		}
	}

	snap := Snapshot{
		Phase:          g.phase,
		Tick:           g.tick,
		Seed:           g.seed,
		Interval:       g.interval,
		Width:          g.grid.Width(),
		Height:         g.grid.Height(),
		Obstacles:      g.grid.Obstacles(),
		Foods:          g.grid.Foods(),
		Body:           g.snake.Body(),
		Heading:        g.snake.Heading(),
		Label:          g.snake.Label(g.policy.Enlightened()),
		Poisons:        views,
		Abilities:      g.policy.UnlockedAbilities(),
		Difficulty:     g.grid.Difficulty(),
		Style:          g.grid.Style(),
		RiskPreference: world.RiskPreference(traj.PoisonsTaken(), traj.TotalMoves()),
		TotalMoves:     traj.TotalMoves(),
		MaxLength:      traj.MaxLength(),
		PoisonsTaken:   traj.PoisonsTaken(),
		FoodEaten:      g.foodEaten,
		LifeSpan:       traj.LifeSpan(now),
		Message:        g.message,
		DeathCause:     traj.DeathCause(),
	}
	if g.phase == PhaseOver {
		snap.Story = traj.Story(now)
	}
	return snap
}
