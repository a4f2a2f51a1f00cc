package snake

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/poison"
)

// EventType tags a trajectory log entry
type EventType int

const (
	EventMove EventType = iota
	EventGrowth
	EventPoisoned
	EventEvolved
	EventDeath
)

func (t EventType) String() string {
	switch t {
	case EventMove:
		return "Move"
	case EventGrowth:
		return "Growth"
	case EventPoisoned:
		return "Poisoned"
	case EventEvolved:
		return "Evolved"
	case EventDeath:
		return "Death"
	default:
		return "Unknown"
	}
}

// Event is one entry of the ordered life log
type Event struct {
	Type     EventType
	At       time.Time
	Position core.Point  // Move
	Value    int         // Growth: new length; Evolved: stage
	Kind     poison.Kind // Poisoned, Evolved
	Message  string      // Death cause, evolution narrative
}

// Trajectory is the append-only record of one snake life
// Counters only grow; death fields are written once
type Trajectory struct {
	birth      time.Time
	death      time.Time
	dead       bool
	deathCause string

	totalMoves   int
	maxLength    int
	poisonsTaken int
	poisonCounts map[poison.Kind]int

	events []Event
}

func newTrajectory(birth time.Time, length int) *Trajectory {
	return &Trajectory{
		birth:        birth,
		maxLength:    length,
		poisonCounts: make(map[poison.Kind]int),
	}
}

func (t *Trajectory) recordMove(p core.Point, at time.Time) {
	t.totalMoves++
	t.events = append(t.events, Event{Type: EventMove, At: at, Position: p})
}

func (t *Trajectory) recordGrowth(length int, at time.Time) {
	if length > t.maxLength {
		t.maxLength = length
	}
	t.events = append(t.events, Event{Type: EventGrowth, At: at, Value: length})
}

func (t *Trajectory) recordPoison(k poison.Kind, at time.Time) {
	t.poisonsTaken++
	t.poisonCounts[k]++
	t.events = append(t.events, Event{Type: EventPoisoned, At: at, Kind: k})
}

func (t *Trajectory) recordEvolution(k poison.Kind, stage int, message string, at time.Time) {
	t.events = append(t.events, Event{Type: EventEvolved, At: at, Kind: k, Value: stage, Message: message})
}

func (t *Trajectory) recordDeath(cause string, at time.Time) {
	if t.dead {
		return
	}
	t.dead = true
	t.death = at
	t.deathCause = cause
	t.events = append(t.events, Event{Type: EventDeath, At: at, Message: cause})
}

func (t *Trajectory) Birth() time.Time { return t.birth }

// Death returns the death time and whether the snake has died
func (t *Trajectory) Death() (time.Time, bool) { return t.death, t.dead }

func (t *Trajectory) DeathCause() string { return t.deathCause }
func (t *Trajectory) TotalMoves() int    { return t.totalMoves }
func (t *Trajectory) MaxLength() int     { return t.maxLength }
func (t *Trajectory) PoisonsTaken() int  { return t.poisonsTaken }

// PoisonCount returns how many times kind was taken
func (t *Trajectory) PoisonCount(k poison.Kind) int {
	return t.poisonCounts[k]
}

// PoisonCounts returns a copy of the per-kind counters
func (t *Trajectory) PoisonCounts() map[poison.Kind]int {
	return maps.Clone(t.poisonCounts)
}

// Events returns a copy of the ordered log
func (t *Trajectory) Events() []Event {
	return slices.Clone(t.events)
}

// LifeSpan is measured to death, or to now while alive
func (t *Trajectory) LifeSpan(now time.Time) time.Duration {
	if t.dead {
		return t.death.Sub(t.birth)
	}
	return now.Sub(t.birth)
}

// Story is the one-paragraph narrative of the life
func (t *Trajectory) Story(now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This snake lived %.1f seconds, moved %d steps, reached length %d and tasted poison %d times.",
		t.LifeSpan(now).Seconds(), t.totalMoves, t.maxLength, t.poisonsTaken)
	if t.deathCause != "" {
		fmt.Fprintf(&b, " In the end, it %s.", t.deathCause)
	}
	return b.String()
}

// Record is the immutable summary handed to persistence
type Record struct {
	Birth        time.Time
	Death        time.Time
	Dead         bool
	LifeSpan     time.Duration
	TotalMoves   int
	MaxLength    int
	PoisonsTaken int
	PoisonCounts map[string]int
	DeathCause   string
	Story        string
}

// Record snapshots the trajectory; now bounds the lifespan of a live snake
func (t *Trajectory) Record(now time.Time) Record {
	counts := make(map[string]int, len(t.poisonCounts))
	for k, n := range t.poisonCounts {
		counts[k.String()] = n
	}
	return Record{
		Birth:        t.birth,
		Death:        t.death,
		Dead:         t.dead,
		LifeSpan:     t.LifeSpan(now),
		TotalMoves:   t.totalMoves,
		MaxLength:    t.maxLength,
		PoisonsTaken: t.poisonsTaken,
		PoisonCounts: counts,
		DeathCause:   t.deathCause,
		Story:        t.Story(now),
	}
}
