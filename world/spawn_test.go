package world

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/poison"
)

// fixedRand replays queued values
type fixedRand struct {
	floats []float64
	ints   []int
}

func (f *fixedRand) Float64() float64 {
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func (f *fixedRand) Intn(n int) int {
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func TestRollBands(t *testing.T) {
	p := core.Point{X: 1, Y: 1}
	tests := []struct {
		name     string
		floats   []float64
		ints     []int
		typ      FoodType
		poisoned bool
		kind     poison.Kind
	}{
		{"normal", []float64{0.10}, nil, Normal, false, 0},
		{"normal edge", []float64{0.5999}, nil, Normal, false, 0},
		{"suspicious", []float64{0.60}, []int{2}, Suspicious, true, poison.Memory},
		{"suspicious edge", []float64{0.8499}, []int{0}, Suspicious, true, poison.Perception},
		{"valuable clean", []float64{0.90, 0.7}, nil, Valuable, false, 0},
		{"valuable poisoned", []float64{0.85, 0.2}, nil, Valuable, true, poison.Evolving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(DefaultSpawnConfig(), &fixedRand{floats: tt.floats, ints: tt.ints})
			f := s.Roll(p)

			if f.Type != tt.typ {
				t.Errorf("Expected %v, got %v", tt.typ, f.Type)
			}
			if f.Growth != tt.typ.Growth() {
				t.Errorf("Expected growth %d, got %d", tt.typ.Growth(), f.Growth)
			}
			if f.Poisoned != tt.poisoned {
				t.Fatalf("Expected poisoned=%v, got %v", tt.poisoned, f.Poisoned)
			}
			if f.Poisoned != (f.Poison != nil) {
				t.Error("Poisoned flag disagrees with template presence")
			}
			if tt.poisoned && f.Poison.Kind != tt.kind {
				t.Errorf("Expected %v, got %v", tt.kind, f.Poison.Kind)
			}
		})
	}
}

func TestSpawnDistribution(t *testing.T) {
	s := NewSpawner(DefaultSpawnConfig(), rand.New(rand.NewSource(2024)))
	counts := map[FoodType]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[s.Roll(core.Point{}).Type]++
	}

	check := func(typ FoodType, want float64) {
		got := float64(counts[typ]) / n
		if got < want-0.03 || got > want+0.03 {
			t.Errorf("%v: expected about %.2f, got %.3f", typ, want, got)
		}
	}
	check(Normal, 0.60)
	check(Suspicious, 0.25)
	check(Valuable, 0.15)
}

func TestSpawnPlacesOnFreeCell(t *testing.T) {
	g := mustGrid(t, 4, 4)
	s := NewSpawner(DefaultSpawnConfig(), rand.New(rand.NewSource(5)))
	blocked := func(p core.Point) bool { return p.Y < 3 }

	for i := 0; i < 4; i++ {
		f, ok := s.Spawn(g, blocked)
		if !ok {
			t.Fatalf("Spawn %d failed", i)
		}
		if f.Position.Y != 3 {
			t.Errorf("Expected spawn on the unblocked row, got %v", f.Position)
		}
	}
	if _, ok := s.Spawn(g, blocked); ok {
		t.Error("Expected spawn to fail when no cell is free")
	}
	if g.FoodCount() != 4 {
		t.Errorf("Expected 4 items, got %d", g.FoodCount())
	}
}
