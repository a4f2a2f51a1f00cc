package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake-poison/core"
)

// Ticker is the game surface the scheduler drives
type Ticker interface {
	Tick(dt time.Duration)
	Interval() time.Duration
	Running() bool
	Restart() error
}

// ClockScheduler ticks the game on its own goroutine
// The interval is re-read after every tick so Impulsive jitter takes effect
// immediately; deadlines are drift-corrected against the pausable clock
type ClockScheduler struct {
	game  Ticker
	clock *PausableClock

	lastTickTime     time.Time
	nextTickDeadline time.Time
	mu               sync.RWMutex

	tickCount atomic.Uint64

	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool
	resetChan chan struct{}

	// Frame synchronization; frameReady may be nil
	frameReady <-chan struct{}
	updateDone chan<- struct{}
}

// NewClockScheduler creates a scheduler for game
// Receives the renderer's frameReady channel and returns the updateDone channel
func NewClockScheduler(game Ticker, clock *PausableClock, frameReady <-chan struct{}) (*ClockScheduler, <-chan struct{}) {
	if clock == nil {
		clock = NewPausableClock()
	}
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		game:         game,
		clock:        clock,
		lastTickTime: clock.Now(),
		stopChan:     make(chan struct{}),
		resetChan:    make(chan struct{}, 1),
		frameReady:   frameReady,
		updateDone:   updateDone,
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// RequestReset asks the loop to restart the game and realign its deadlines
// Coalesces with a reset already pending
func (cs *ClockScheduler) RequestReset() {
	select {
	case cs.resetChan <- struct{}{}:
	default:
	}
}

// TickCount returns ticks executed since start or the last reset
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// LastTickTime returns the game time of the most recent tick
func (cs *ClockScheduler) LastTickTime() time.Time {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.lastTickTime
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.lastTickTime = cs.clock.Now()
	cs.nextTickDeadline = cs.lastTickTime.Add(cs.game.Interval())
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-cs.resetChan:
			cs.executeReset()
			continue
		default:
		}

		interval := cs.game.Interval()
		var sleepDuration time.Duration

		if !cs.game.Running() {
			// Not ticking: poll slowly and keep the deadline from piling up
			sleepDuration = interval * 2
			cs.mu.Lock()
			cs.nextTickDeadline = cs.clock.Now().Add(interval)
			cs.mu.Unlock()
		} else {
			gameNow := cs.clock.Now()

			cs.mu.RLock()
			deadline := cs.nextTickDeadline
			cs.mu.RUnlock()

			if !gameNow.Before(deadline) {
				if !cs.waitFrame(interval) {
					return
				}

				cs.game.Tick(interval)
				cs.tickCount.Add(1)

				// Jitter may have changed the interval during the tick
				interval = cs.game.Interval()

				cs.mu.Lock()
				cs.lastTickTime = gameNow
				cs.nextTickDeadline = cs.nextTickDeadline.Add(interval)
				if gameNow.Sub(cs.nextTickDeadline) > interval*2 {
					cs.nextTickDeadline = gameNow.Add(interval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}

				sleepDuration = max(0, deadline.Sub(cs.clock.Now()))
			} else {
				sleepDuration = deadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.resetChan:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				cs.executeReset()
			case <-cs.stopChan:
				return
			}
		}
	}
}

// waitFrame blocks until the renderer finished the previous frame
// Returns false when stopped while waiting
func (cs *ClockScheduler) waitFrame(interval time.Duration) bool {
	if cs.frameReady == nil {
		return true
	}
	select {
	case <-cs.frameReady:
	case <-time.After(interval * 2):
	case <-cs.stopChan:
		return false
	}
	return true
}

func (cs *ClockScheduler) executeReset() {
	if err := cs.game.Restart(); err != nil {
		return
	}
	interval := cs.game.Interval()

	cs.mu.Lock()
	cs.tickCount.Store(0)
	cs.lastTickTime = cs.clock.Now()
	cs.nextTickDeadline = cs.lastTickTime.Add(interval)
	cs.mu.Unlock()
}
