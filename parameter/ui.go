package parameter

// Terminal layout
const (
	// CellWidth is terminal columns per grid cell (square-ish cells)
	CellWidth = 2

	// StatusLines below the board
	StatusLines = 3

	// PerceptionFlickerChance hides a food glyph for one frame under Perception
	PerceptionFlickerChance = 0.3

	// PerceptionJitter is the max cell offset of distorted body segments in the window front-end
	PerceptionJitter = 1
)

// Window front-end
const (
	WindowCellSize   = 24
	WindowPanelWidth = 260
	WindowPadding    = 10
	WindowTargetFPS  = 60
)
