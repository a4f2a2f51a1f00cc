package world

import "github.com/lixenwraith/snake-poison/parameter"

// EvolutionContext carries the lifetime statistics the world adapts to
type EvolutionContext struct {
	PoisonsTaken int
	TotalMoves   int
}

// Change reports which adaptation fields moved during Evolve
type Change struct {
	DifficultyChanged bool
	Difficulty        float64
	StyleChanged      bool
	Style             Style
	RiskPreference    float64
}

// RiskPreference maps poisons per move onto [0,1]; neutral before the first move
func RiskPreference(poisons, moves int) float64 {
	if moves <= 0 {
		return parameter.WorldNeutralRisk
	}
	r := float64(poisons) / float64(moves) * parameter.WorldRiskScale
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}

// Evolve nudges difficulty toward the observed risk appetite and flips the
// style to Cyber once the snake has taken enough poison
func (g *Grid) Evolve(ctx EvolutionContext) Change {
	risk := RiskPreference(ctx.PoisonsTaken, ctx.TotalMoves)
	ch := Change{RiskPreference: risk}

	prev := g.difficulty
	switch {
	case risk > parameter.WorldRiskHigh:
		g.difficulty = min(1, g.difficulty+parameter.WorldDifficultyStep)
	case risk < parameter.WorldRiskLow:
		g.difficulty = max(0, g.difficulty-parameter.WorldDifficultyStep)
	}
	if g.difficulty != prev {
		ch.DifficultyChanged = true
	}
	ch.Difficulty = g.difficulty

	if ctx.PoisonsTaken > parameter.WorldStyleThreshold && g.style == Minimal {
		g.style = Cyber
		ch.StyleChanged = true
	}
	ch.Style = g.style
	return ch
}
