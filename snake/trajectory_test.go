package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/poison"
)

func TestTrajectoryEventOrder(t *testing.T) {
	s, clock := newTestSnake(core.Point{X: 5, Y: 5})

	s.Move()
	clock.Advance(time.Second)
	s.Grow(1)
	s.ApplyPoison(poison.NewActive(poison.MustCreate(poison.Evolving)))
	s.RecordEvolution(poison.Evolving, 1, "Sprout")
	s.Die("bit itself")

	want := []EventType{EventMove, EventGrowth, EventPoisoned, EventEvolved, EventDeath}
	events := s.Trajectory().Events()
	if len(events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(events))
	}
	for i, typ := range want {
		if events[i].Type != typ {
			t.Errorf("Event %d: expected %v, got %v", i, typ, events[i].Type)
		}
	}
	if events[0].Position != (core.Point{X: 6, Y: 5}) {
		t.Errorf("Expected move event at (6,5), got %v", events[0].Position)
	}
	for i := 1; i < len(events); i++ {
		if events[i].At.Before(events[i-1].At) {
			t.Errorf("Event %d timestamp goes backwards", i)
		}
	}
}

func TestTrajectoryRecord(t *testing.T) {
	s, clock := newTestSnake(core.Point{X: 5, Y: 5})
	s.Move()
	s.Move()
	s.ApplyPoison(poison.NewActive(poison.MustCreate(poison.Perception)))
	s.ApplyPoison(poison.NewActive(poison.MustCreate(poison.Perception)))
	s.Grow(3)
	clock.Advance(12 * time.Second)
	s.Die("hit the wall")

	rec := s.Trajectory().Record(clock.Now().Add(time.Hour))

	if !rec.Dead {
		t.Error("Expected record to be marked dead")
	}
	if rec.LifeSpan != 12*time.Second {
		t.Errorf("Expected lifespan 12s, got %v", rec.LifeSpan)
	}
	if rec.TotalMoves != 2 || rec.MaxLength != 6 || rec.PoisonsTaken != 2 {
		t.Errorf("Unexpected counters: moves=%d max=%d poisons=%d", rec.TotalMoves, rec.MaxLength, rec.PoisonsTaken)
	}
	if rec.PoisonCounts["Perception"] != 2 {
		t.Errorf("Expected 2 Perception pickups, got %d", rec.PoisonCounts["Perception"])
	}
	if !strings.Contains(rec.Story, "12.0 seconds") || !strings.Contains(rec.Story, "hit the wall") {
		t.Errorf("Unexpected story: %q", rec.Story)
	}
}

func TestTrajectoryCountersCopy(t *testing.T) {
	s, _ := newTestSnake(core.Point{X: 5, Y: 5})
	s.ApplyPoison(poison.NewActive(poison.MustCreate(poison.Memory)))

	counts := s.Trajectory().PoisonCounts()
	counts[poison.Memory] = 99

	if s.Trajectory().PoisonCount(poison.Memory) != 1 {
		t.Error("Expected trajectory counters to be isolated from returned copy")
	}
}
