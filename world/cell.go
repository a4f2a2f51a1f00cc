package world

// CellType is the static class of a grid cell
type CellType uint8

const (
	CellEmpty CellType = iota
	CellWall
	CellFood
	CellObstacle
)

func (c CellType) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellWall:
		return "Wall"
	case CellFood:
		return "Food"
	case CellObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Style is the visual theme of the world; it only moves away from Minimal
type Style uint8

const (
	Minimal Style = iota
	Cyber
	Organic
	Chaotic
)

func (s Style) String() string {
	switch s {
	case Minimal:
		return "Minimal"
	case Cyber:
		return "Cyber"
	case Organic:
		return "Organic"
	case Chaotic:
		return "Chaotic"
	default:
		return "Unknown"
	}
}
