package evolution

// Ability is a permanent capability unlocked by finishing an evolution path
type Ability int

const (
	None Ability = iota
	TrueSight
	Dash
	Rebirth
	PhaseThrough
	// Random is a placeholder resolved to a concrete ability at unlock time
	Random
)

// randomPool is the draw set for Random, in stable order
var randomPool = []Ability{TrueSight, Dash, Rebirth, PhaseThrough}

func (a Ability) String() string {
	switch a {
	case None:
		return "None"
	case TrueSight:
		return "TrueSight"
	case Dash:
		return "Dash"
	case Rebirth:
		return "Rebirth"
	case PhaseThrough:
		return "PhaseThrough"
	case Random:
		return "Random"
	default:
		return "Unknown"
	}
}

// Concrete reports whether the ability can sit in the unlocked set
func (a Ability) Concrete() bool {
	return a >= TrueSight && a <= PhaseThrough
}

// ParseAbility resolves a persisted name back to a concrete ability
func ParseAbility(s string) (Ability, bool) {
	for _, a := range randomPool {
		if a.String() == s {
			return a, true
		}
	}
	return None, false
}
