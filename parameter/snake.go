package parameter

// Snake spawn
const (
	// SnakeInitialLength is the segment count at game start; body never shrinks below it
	SnakeInitialLength = 3

	// SnakeMaxInitialLength bounds the configured start length
	SnakeMaxInitialLength = 3
)

// Death causes recorded on the trajectory
const (
	DeathCauseWall     = "hit the wall"
	DeathCauseSelf     = "bit itself"
	DeathCauseObstacle = "hit an obstacle"
)
