package snake

// State is the stored lifecycle state
type State int

const (
	Normal State = iota
	Poisoned
	Dead
)

func (s State) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Poisoned:
		return "Poisoned"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Label is a presentation state computed from stored state and poison contents
type Label int

const (
	LabelNormal Label = iota
	LabelPoisoned
	LabelEvolving
	LabelEnlightened
	LabelDead
)

func (l Label) String() string {
	switch l {
	case LabelNormal:
		return "Normal"
	case LabelPoisoned:
		return "Poisoned"
	case LabelEvolving:
		return "Evolving"
	case LabelEnlightened:
		return "Enlightened"
	case LabelDead:
		return "Dead"
	default:
		return "Unknown"
	}
}
