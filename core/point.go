package core

import "fmt"

// Point is a grid cell coordinate, origin top-left, Y grows downward
type Point struct {
	X, Y int
}

// Add returns the cell one heading step away
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a 4-directional unit heading
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists the four headings in clockwise order starting Up
func Directions() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// Opposite returns the exact reversal
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsUnit reports whether d is one of the four headings
func (d Direction) IsUnit() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("dir(%d,%d)", d.DX, d.DY)
	}
}
