package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
	if !r.Ints.Has(KeyTicks) || r.Ints.Has("missing") {
		t.Error("Has disagrees with registered keys")
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if f.Get() != 4000 {
		t.Errorf("Expected 4000, got %v", f.Get())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected zero value to read empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+10))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(7)
	r.Ints.Get(KeyFoodEaten).Store(2)
	r.Floats.Get(KeyDifficulty).Set(0.55)
	r.Strings.Get(KeyStyle).Store("Cyber")
	r.Bools.Get(KeyAudioEnabled).Store(true)

	got := r.Lines()
	want := []string{
		"engine.ticks=7",
		"game.food=2",
		"world.difficulty=0.55",
		"audio.enabled=true",
		"world.style=Cyber",
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if r.TotalCount() != 5 {
		t.Errorf("Expected 5 metrics, got %d", r.TotalCount())
	}
}
