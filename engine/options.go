package engine

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/event"
	"github.com/lixenwraith/snake-poison/status"
)

// Option configures a Game at construction
type Option func(*Game)

// WithClock replaces the game-time source; the default is a PausableClock
// A clock with Pause and Resume methods follows the game's pause state
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithRand replaces the seeded generator built from the config seed
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithHandler subscribes h before the first event is produced
func WithHandler(h event.Handler[Snapshot]) Option {
	return func(g *Game) { g.pending = append(g.pending, h) }
}

// WithStatus shares a metrics registry with the front-end
func WithStatus(reg *status.Registry) Option {
	return func(g *Game) { g.statusReg = reg }
}
