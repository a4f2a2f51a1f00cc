package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides game time that stands still while paused
// It satisfies core.Clock and stamps trajectory events
type PausableClock struct {
	mu sync.RWMutex

	realStartTime time.Time
	gameStartTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative pause duration

	realNow func() time.Time
}

// NewPausableClock creates a running clock whose game epoch is now
func NewPausableClock() *PausableClock {
	return newPausableClock(time.Now)
}

func newPausableClock(realNow func() time.Time) *PausableClock {
	now := realNow()
	return &PausableClock{
		realStartTime: now,
		gameStartTime: now,
		realNow:       realNow,
	}
}

// Now returns current game time (frozen during pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}
	return pc.gameStartTime.Add(pc.realNow().Sub(pc.realStartTime) - pc.totalPausedTime)
}

// RealTime returns wall clock time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.realNow()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStartTime = pc.realNow()
		pc.mu.Unlock()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.realNow().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.realNow().Sub(pc.pauseStartTime)
	}
	return total
}
