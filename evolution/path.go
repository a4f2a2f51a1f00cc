package evolution

import "github.com/lixenwraith/snake-poison/poison"

// Stage is one step of a poison's narrative path
type Stage struct {
	Level   int
	Name    string
	Effect  string
	Unlocks Ability
}

// Path is the three-stage progression of one poison kind
type Path struct {
	Kind   poison.Kind
	Stages [3]Stage
}

// Final returns the last stage, which carries the unlock
func (p Path) Final() Stage {
	return p.Stages[len(p.Stages)-1]
}

// At returns the stage for level 1..3; out of range levels clamp
func (p Path) At(level int) Stage {
	switch {
	case level < 1:
		level = 1
	case level > len(p.Stages):
		level = len(p.Stages)
	}
	return p.Stages[level-1]
}

var paths = map[poison.Kind]Path{
	poison.Perception: {
		Kind: poison.Perception,
		Stages: [3]Stage{
			{Level: 1, Name: "Blurred Horizon", Effect: "edges of the world waver"},
			{Level: 2, Name: "Double Horizon", Effect: "every wall has a ghost"},
			{Level: 3, Name: "True Sight", Effect: "the hidden becomes visible", Unlocks: TrueSight},
		},
	},
	poison.Impulsive: {
		Kind: poison.Impulsive,
		Stages: [3]Stage{
			{Level: 1, Name: "Tremor", Effect: "muscles twitch on their own"},
			{Level: 2, Name: "Pulse", Effect: "speed comes in waves"},
			{Level: 3, Name: "Lightning", Effect: "instant bursts of motion", Unlocks: Dash},
		},
	},
	poison.Memory: {
		Kind: poison.Memory,
		Stages: [3]Stage{
			{Level: 1, Name: "Forgetful", Effect: "the trail grows faint"},
			{Level: 2, Name: "Amnesia", Effect: "the past is gone"},
			{Level: 3, Name: "Rebirth", Effect: "a clean slate", Unlocks: Rebirth},
		},
	},
	poison.Evolving: {
		Kind: poison.Evolving,
		Stages: [3]Stage{
			{Level: 1, Name: "Sprout", Effect: "something stirs beneath the scales"},
			{Level: 2, Name: "Metamorphosis", Effect: "the body reshapes itself"},
			{Level: 3, Name: "Awakening", Effect: "a new sense opens", Unlocks: Random},
		},
	},
}

// PathFor returns the path of kind
func PathFor(k poison.Kind) (Path, bool) {
	p, ok := paths[k]
	return p, ok
}
