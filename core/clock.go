package core

import (
	"sync"
	"time"
)

// Clock is the time source for trajectory timestamps and game time
type Clock interface {
	Now() time.Time
}

// WallClock provides the real system time with monotonic clock readings
type WallClock struct{}

// Now returns the current time with monotonic clock reading
func (WallClock) Now() time.Time {
	return time.Now()
}

// MockClock provides a controllable time source for testing
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockClock creates a new mock clock at the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set sets the current time for the mock
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
