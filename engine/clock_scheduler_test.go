package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

// fakeTicker counts calls from the scheduler goroutine
type fakeTicker struct {
	ticks    atomic.Int64
	restarts atomic.Int64
	running  atomic.Bool
	interval time.Duration
}

func newFakeTicker(interval time.Duration) *fakeTicker {
	f := &fakeTicker{interval: interval}
	f.running.Store(true)
	return f
}

func (f *fakeTicker) Tick(time.Duration)      { f.ticks.Add(1) }
func (f *fakeTicker) Interval() time.Duration { return f.interval }
func (f *fakeTicker) Running() bool           { return f.running.Load() }
func (f *fakeTicker) Restart() error {
	f.restarts.Add(1)
	return nil
}

func TestClockSchedulerTicking(t *testing.T) {
	game := newFakeTicker(50 * time.Millisecond)
	scheduler, _ := NewClockScheduler(game, NewPausableClock(), nil)

	scheduler.Start()
	defer scheduler.Stop()

	time.Sleep(550 * time.Millisecond)

	ticks := scheduler.TickCount()
	if ticks < 8 {
		t.Errorf("Tick count = %d after 550ms, expected at least 8", ticks)
	}
	if ticks > 12 {
		t.Errorf("Tick count = %d after 550ms, expected at most 12", ticks)
	}
	if int64(ticks) != game.ticks.Load() {
		t.Errorf("Scheduler counted %d, game saw %d", ticks, game.ticks.Load())
	}
}

func TestClockSchedulerFrameHandshake(t *testing.T) {
	game := newFakeTicker(20 * time.Millisecond)
	frameReady := make(chan struct{}, 1)
	scheduler, updateDone := NewClockScheduler(game, NewPausableClock(), frameReady)

	scheduler.Start()
	defer scheduler.Stop()

	for i := 0; i < 3; i++ {
		frameReady <- struct{}{}
		select {
		case <-updateDone:
		case <-time.After(time.Second):
			t.Fatalf("Update %d not signalled", i)
		}
	}
	if game.ticks.Load() < 3 {
		t.Errorf("Expected at least 3 ticks, got %d", game.ticks.Load())
	}
}

func TestClockSchedulerSkipsWhenNotRunning(t *testing.T) {
	game := newFakeTicker(20 * time.Millisecond)
	game.running.Store(false)
	scheduler, _ := NewClockScheduler(game, NewPausableClock(), nil)

	scheduler.Start()
	time.Sleep(150 * time.Millisecond)
	scheduler.Stop()

	if n := game.ticks.Load(); n != 0 {
		t.Errorf("Expected no ticks while not running, got %d", n)
	}
}

func TestClockSchedulerReset(t *testing.T) {
	game := newFakeTicker(20 * time.Millisecond)
	scheduler, _ := NewClockScheduler(game, NewPausableClock(), nil)

	scheduler.Start()
	defer scheduler.Stop()
	time.Sleep(100 * time.Millisecond)

	game.running.Store(false)
	scheduler.RequestReset()
	time.Sleep(100 * time.Millisecond)

	if game.restarts.Load() != 1 {
		t.Errorf("Expected one restart, got %d", game.restarts.Load())
	}
	if scheduler.TickCount() != 0 {
		t.Errorf("Expected tick count reset, got %d", scheduler.TickCount())
	}
}

func TestClockSchedulerStopIdempotent(t *testing.T) {
	game := newFakeTicker(20 * time.Millisecond)
	scheduler, _ := NewClockScheduler(game, NewPausableClock(), nil)

	// Stop before start is harmless
	scheduler.Stop()

	scheduler2, _ := NewClockScheduler(game, NewPausableClock(), nil)
	scheduler2.Start()
	time.Sleep(60 * time.Millisecond)
	scheduler2.Stop()
	scheduler2.Stop()

	initial := scheduler2.TickCount()
	time.Sleep(60 * time.Millisecond)
	if final := scheduler2.TickCount(); final != initial {
		t.Errorf("Tick count increased after stop: %d -> %d", initial, final)
	}
	t.Logf("✓ Stop() is idempotent - can be called multiple times safely")
}
