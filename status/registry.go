// Package status is a small lock-free metrics registry. The engine writes
// counters as it ticks; front-ends read them for the debug status line.
package status

import (
	"fmt"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyTicks            = "engine.ticks"
	KeyEventsPushed     = "engine.events"
	KeyTickInterval     = "engine.interval_ms"
	KeyFoodEaten        = "game.food"
	KeyPoisonsTaken     = "game.poisons"
	KeyGamesPlayed      = "game.played"
	KeyDifficulty       = "world.difficulty"
	KeyRiskPreference   = "world.risk"
	KeyStyle            = "world.style"
	KeyPhase            = "game.phase"
	KeyLastDeathCause   = "game.last_death"
	KeyAudioEnabled     = "audio.enabled"
	KeyHistoryGames     = "history.games"
	KeyHistoryAbilities = "history.abilities"
)

// Registry groups metric maps by value type
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key=value", grouped by type and sorted by key
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return out
}
