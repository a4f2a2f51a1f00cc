package poison

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/snake-poison/parameter"
)

// ErrUnknownKind is returned for a kind outside the closed set
var ErrUnknownKind = errors.New("unknown poison kind")

// Template is the immutable definition a food item carries
// Active is the mutable runtime instance derived from it
type Template struct {
	Kind        Kind
	Name        string
	Description string
	Duration    time.Duration // Zero when Permanent
	Intensity   float64       // [0,1]
	Drawback    string
	Upside      string
	Stackable   bool
	Permanent   bool // Decremented by stage progression, not time
}

// DefaultIntensity returns the catalog intensity for a kind
func DefaultIntensity(k Kind) float64 {
	if k == Evolving {
		return parameter.EvolvingDefaultIntensity
	}
	return parameter.PoisonDefaultIntensity
}

// Create returns the template for kind, optionally overriding its intensity
// Intensity is clamped to [0,1]
func Create(k Kind, intensity ...float64) (Template, error) {
	if !k.Valid() {
		return Template{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	level := DefaultIntensity(k)
	if len(intensity) > 0 {
		level = clamp01(intensity[0])
	}

	t := catalog[k]
	t.Intensity = level
	return t, nil
}

// MustCreate is Create for kinds known to be valid
func MustCreate(k Kind) Template {
	t, err := Create(k)
	if err != nil {
		panic(err)
	}
	return t
}

var catalog = [kindCount]Template{
	Perception: {
		Kind:        Perception,
		Name:        "Perception Poison",
		Description: "The outline of the world begins to blur...",
		Duration:    parameter.PerceptionDuration,
		Drawback:    "vision warps, distances lie",
		Upside:      "may reveal hidden food",
		Stackable:   true,
	},
	Impulsive: {
		Kind:        Impulsive,
		Name:        "Impulsive Poison",
		Description: "The body stops listening...",
		Duration:    parameter.ImpulsiveDuration,
		Drawback:    "unsteady control, sudden speed changes",
		Upside:      "speed boost, breaks through barriers",
		Stackable:   false,
	},
	Memory: {
		Kind:        Memory,
		Name:        "Memory Poison",
		Description: "The past slowly fades...",
		Duration:    parameter.MemoryDuration,
		Drawback:    "the trail disappears",
		Upside:      "clears other negative states",
		Stackable:   false,
	},
	Evolving: {
		Kind:        Evolving,
		Name:        "Evolving Poison",
		Description: "Change is about to begin...",
		Drawback:    "the effect evolves three times",
		Upside:      "the final stage may awaken an ability",
		Stackable:   true,
		Permanent:   true,
	},
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
