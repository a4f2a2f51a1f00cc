package world

import (
	"math"
	"testing"
)

func TestRiskPreference(t *testing.T) {
	tests := []struct {
		poisons, moves int
		want           float64
	}{
		{0, 0, 0.5},
		{5, 0, 0.5},
		{0, 100, 0},
		{1, 20, 0.5},
		{5, 10, 1},
	}
	for _, tt := range tests {
		if got := RiskPreference(tt.poisons, tt.moves); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RiskPreference(%d, %d): expected %v, got %v", tt.poisons, tt.moves, tt.want, got)
		}
	}
}

func TestEvolveDifficulty(t *testing.T) {
	g := mustGrid(t, 5, 5)

	ch := g.Evolve(EvolutionContext{PoisonsTaken: 8, TotalMoves: 10})
	if !ch.DifficultyChanged || g.Difficulty() <= 0.5 {
		t.Errorf("Expected difficulty to rise, got %v", g.Difficulty())
	}

	for i := 0; i < 30; i++ {
		g.Evolve(EvolutionContext{PoisonsTaken: 8, TotalMoves: 10})
	}
	if g.Difficulty() != 1 {
		t.Errorf("Expected difficulty capped at 1, got %v", g.Difficulty())
	}
	if ch := g.Evolve(EvolutionContext{PoisonsTaken: 8, TotalMoves: 10}); ch.DifficultyChanged {
		t.Error("Expected no change at the cap")
	}

	for i := 0; i < 40; i++ {
		g.Evolve(EvolutionContext{PoisonsTaken: 0, TotalMoves: 100})
	}
	if g.Difficulty() != 0 {
		t.Errorf("Expected difficulty floored at 0, got %v", g.Difficulty())
	}

	// Neutral band leaves difficulty alone
	before := g.Difficulty()
	if ch := g.Evolve(EvolutionContext{PoisonsTaken: 1, TotalMoves: 20}); ch.DifficultyChanged || g.Difficulty() != before {
		t.Error("Expected neutral risk to hold difficulty")
	}
}

func TestEvolveStyleIsOneWay(t *testing.T) {
	g := mustGrid(t, 5, 5)

	if ch := g.Evolve(EvolutionContext{PoisonsTaken: 10, TotalMoves: 1000}); ch.StyleChanged {
		t.Error("Expected no style change at the threshold")
	}

	ch := g.Evolve(EvolutionContext{PoisonsTaken: 11, TotalMoves: 1000})
	if !ch.StyleChanged || g.Style() != Cyber {
		t.Errorf("Expected Cyber, got %v", g.Style())
	}

	ch = g.Evolve(EvolutionContext{PoisonsTaken: 0, TotalMoves: 1000})
	if ch.StyleChanged || g.Style() != Cyber {
		t.Errorf("Expected style to stay Cyber, got %v", g.Style())
	}
}
