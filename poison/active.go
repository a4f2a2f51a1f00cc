package poison

import "time"

// Active is a poison instance currently affecting a snake
// Identity is the pointer; the owning snake removes instances by pointer
type Active struct {
	Kind      Kind
	Intensity float64
	Remaining time.Duration // Meaningless when Permanent
	Permanent bool
	Stackable bool

	// Stage is the Evolving progress counter, 0..3
	Stage int
	// StageElapsed accumulates game time toward the next stage advance
	StageElapsed time.Duration
}

// NewActive builds a fresh runtime instance from a template
func NewActive(t Template) *Active {
	return &Active{
		Kind:      t.Kind,
		Intensity: t.Intensity,
		Remaining: t.Duration,
		Permanent: t.Permanent,
		Stackable: t.Stackable,
	}
}

// Refresh extends a from a new pickup of the same non-stackable kind
// Remaining and Intensity only grow
func (a *Active) Refresh(from *Active) {
	if from.Remaining > a.Remaining {
		a.Remaining = from.Remaining
	}
	if from.Intensity > a.Intensity {
		a.Intensity = from.Intensity
	}
}

// Expired reports whether a timed instance has run out
func (a *Active) Expired() bool {
	return !a.Permanent && a.Remaining <= 0
}
