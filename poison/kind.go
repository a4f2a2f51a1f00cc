// Package poison holds the poison catalog: the closed set of kinds, their
// immutable templates, and the runtime instance a snake carries.
package poison

import "fmt"

// Kind identifies a poison family
type Kind int

const (
	// Perception distorts vision; upside reveals hidden items
	Perception Kind = iota
	// Impulsive jitters speed and heading; upside is a speed boost
	Impulsive
	// Memory hides the trail; upside clears other negative states
	Memory
	// Evolving escalates through three stages and may unlock an ability
	Evolving
	kindCount
)

// Kinds returns every poison kind in declaration order
func Kinds() []Kind {
	return []Kind{Perception, Impulsive, Memory, Evolving}
}

// Valid reports whether k belongs to the closed kind set
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) String() string {
	switch k {
	case Perception:
		return "Perception"
	case Impulsive:
		return "Impulsive"
	case Memory:
		return "Memory"
	case Evolving:
		return "Evolving"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Symbol is the single-letter tag used by the status bar
func (k Kind) Symbol() rune {
	switch k {
	case Perception:
		return 'P'
	case Impulsive:
		return 'I'
	case Memory:
		return 'M'
	case Evolving:
		return 'E'
	default:
		return '?'
	}
}
