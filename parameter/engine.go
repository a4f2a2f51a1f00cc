package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the base tick interval for snake movement
	GameUpdateInterval = 150 * time.Millisecond

	// MinTickInterval and MaxTickInterval bound any configured or jittered tick
	MinTickInterval = 20 * time.Millisecond
	MaxTickInterval = 2 * time.Second
)

// Event ring buffer
const (
	// EventQueueSize is the fixed capacity of the event ring buffer, power of two
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations
	EventBufferMask = EventQueueSize - 1
)

// Grid
const (
	DefaultGridWidth  = 30
	DefaultGridHeight = 20

	// MaxGridDimension keeps the O(width*height) empty-cell scan cheap
	MaxGridDimension = 256
)
