package engine

// Phase is the lifecycle stage of one game session
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

var validTransitions = map[Phase][]Phase{
	PhaseReady:   {PhaseRunning},
	PhaseRunning: {PhasePaused, PhaseOver, PhaseRunning},
	PhasePaused:  {PhaseRunning, PhaseOver},
	PhaseOver:    {PhaseRunning},
}

// CanTransition checks if a phase transition is valid
// Running to Running is a restart
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
