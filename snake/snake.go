// Package snake models one snake life: body, heading, active poisons and the
// trajectory recorded along the way. It performs no bounds checks; collision
// resolution belongs to the orchestrator.
package snake

import (
	"slices"

	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/poison"
)

// Snake is not safe for concurrent use; the engine serializes access
type Snake struct {
	body    []core.Point // head at index 0
	heading core.Direction
	state   State
	poisons []*poison.Active

	trajectory *Trajectory
	clock      core.Clock
}

// New creates a snake with its head at start and length-1 segments trailing
// behind it, opposite the heading. length is clamped to at least 1
func New(start core.Point, heading core.Direction, length int, clock core.Clock) *Snake {
	if length < 1 {
		length = 1
	}
	if !heading.IsUnit() {
		heading = core.Right
	}
	if clock == nil {
		clock = core.WallClock{}
	}

	body := make([]core.Point, 0, length)
	back := heading.Opposite()
	p := start
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}

	return &Snake{
		body:       body,
		heading:    heading,
		state:      Normal,
		trajectory: newTrajectory(clock.Now(), len(body)),
		clock:      clock,
	}
}

// Head returns the head cell
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() core.Point {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []core.Point {
	return slices.Clone(s.body)
}

// Len returns the logical body length, including pending growth
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current heading
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// State returns the stored state
func (s *Snake) State() State {
	return s.state
}

// Alive reports whether the snake is not dead
func (s *Snake) Alive() bool {
	return s.state != Dead
}

// Trajectory returns the life record; callers must treat it as read-only
func (s *Snake) Trajectory() *Trajectory {
	return s.trajectory
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p core.Point) bool {
	return slices.Contains(s.body, p)
}

// Move advances the head one cell along the heading and drops the tail
func (s *Snake) Move() {
	if !s.Alive() {
		return
	}

	newHead := s.body[0].Add(s.heading)
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	s.trajectory.recordMove(newHead, s.clock.Now())
}

// Grow appends amount copies of the tail; the tail catches up over the next moves
func (s *Snake) Grow(amount int) {
	if !s.Alive() || amount <= 0 {
		return
	}

	tail := s.Tail()
	for i := 0; i < amount; i++ {
		s.body = append(s.body, tail)
	}

	s.trajectory.recordGrowth(len(s.body), s.clock.Now())
}

// SetHeading replaces the heading; an exact reversal or a non-unit vector is ignored
func (s *Snake) SetHeading(d core.Direction) bool {
	if !d.IsUnit() || d == s.heading.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// CollidesWithSelf reports whether the head shares a cell with any other segment
func (s *Snake) CollidesWithSelf() bool {
	head := s.body[0]
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// ApplyPoison attaches an instance and marks the snake Poisoned
// A non-stackable kind already active is refreshed in place instead; the
// returned pointer is the instance actually held
func (s *Snake) ApplyPoison(ap *poison.Active) *poison.Active {
	if !s.Alive() || ap == nil {
		return nil
	}

	held := ap
	if !ap.Stackable {
		if existing := s.activeOf(ap.Kind); existing != nil {
			existing.Refresh(ap)
			held = existing
		}
	}
	if held == ap {
		s.poisons = append(s.poisons, ap)
	}

	s.state = Poisoned
	s.trajectory.recordPoison(ap.Kind, s.clock.Now())
	return held
}

// RemovePoison detaches an instance by identity
// The snake returns to Normal when its last poison goes, never overriding Dead
func (s *Snake) RemovePoison(ap *poison.Active) bool {
	i := slices.Index(s.poisons, ap)
	if i < 0 {
		return false
	}
	s.poisons = slices.Delete(s.poisons, i, i+1)

	if len(s.poisons) == 0 && s.state == Poisoned {
		s.state = Normal
	}
	return true
}

// ActivePoisons returns the held instances in pickup order
// The slice is a copy; the pointers are live
func (s *Snake) ActivePoisons() []*poison.Active {
	return slices.Clone(s.poisons)
}

// HasPoison reports whether any instance of kind is active
func (s *Snake) HasPoison(k poison.Kind) bool {
	return s.activeOf(k) != nil
}

func (s *Snake) activeOf(k poison.Kind) *poison.Active {
	for _, ap := range s.poisons {
		if ap.Kind == k {
			return ap
		}
	}
	return nil
}

// RecordEvolution logs a stage transition on the trajectory
func (s *Snake) RecordEvolution(k poison.Kind, stage int, message string) {
	s.trajectory.recordEvolution(k, stage, message, s.clock.Now())
}

// Die is irreversible; repeated calls keep the first cause
func (s *Snake) Die(cause string) {
	if s.state == Dead {
		return
	}
	s.state = Dead
	s.trajectory.recordDeath(cause, s.clock.Now())
}

// Label computes the presentation state
// enlightened is supplied by the caller from the unlocked ability set
func (s *Snake) Label(enlightened bool) Label {
	switch {
	case s.state == Dead:
		return LabelDead
	case s.HasPoison(poison.Evolving):
		return LabelEvolving
	case s.state == Poisoned:
		return LabelPoisoned
	case enlightened:
		return LabelEnlightened
	default:
		return LabelNormal
	}
}
