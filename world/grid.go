// Package world holds the playing field: bounds, static cells, food placement
// and the slow adaptation of difficulty and style to the player's habits.
package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/parameter"
)

var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrCellOccupied = errors.New("cell occupied")
	ErrInvalidSize  = errors.New("invalid grid size")
)

// Rand is the subset of golang.org/x/exp/rand the world draws from
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Grid is the fixed-size board
// Not safe for concurrent use; the engine serializes access
type Grid struct {
	width  int
	height int
	cells  []CellType

	// foods keeps spawn order; cells mirrors each entry as Food
	foods []Food

	difficulty float64
	style      Style
}

// New creates an empty grid with default difficulty and Minimal style
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > parameter.MaxGridDimension || height > parameter.MaxGridDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Grid{
		width:      width,
		height:     height,
		cells:      make([]CellType, width*height),
		difficulty: parameter.WorldInitialDifficulty,
		style:      Minimal,
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Difficulty is an adaptation signal in [0,1]
func (g *Grid) Difficulty() float64 { return g.difficulty }
func (g *Grid) Style() Style        { return g.style }

func (g *Grid) index(p core.Point) int {
	return p.Y*g.width + p.X
}

// InBounds reports whether p lies on the board
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Cell returns the class of p; anything off the board reads as Wall
func (g *Grid) Cell(p core.Point) CellType {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.cells[g.index(p)]
}

// Walkable reports whether a head may enter p
func (g *Grid) Walkable(p core.Point) bool {
	switch g.Cell(p) {
	case CellEmpty, CellFood:
		return true
	default:
		return false
	}
}

// SetObstacle marks p as a lethal obstacle; the cell must be empty
func (g *Grid) SetObstacle(p core.Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if g.cells[g.index(p)] != CellEmpty {
		return fmt.Errorf("%w: %v", ErrCellOccupied, p)
	}
	g.cells[g.index(p)] = CellObstacle
	return nil
}

// Obstacles lists obstacle cells in row-major order
func (g *Grid) Obstacles() []core.Point {
	var out []core.Point
	for i, c := range g.cells {
		if c == CellObstacle {
			out = append(out, core.Point{X: i % g.width, Y: i / g.width})
		}
	}
	return out
}

// RandomEmptyPosition draws uniformly among Empty cells for which blocked
// returns false. The bool is false when no such cell exists
func (g *Grid) RandomEmptyPosition(rng Rand, blocked func(core.Point) bool) (core.Point, bool) {
	candidates := make([]core.Point, 0, len(g.cells))
	for i, c := range g.cells {
		if c != CellEmpty {
			continue
		}
		p := core.Point{X: i % g.width, Y: i / g.width}
		if blocked != nil && blocked(p) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return core.Point{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// PlaceFood puts f on an Empty cell
func (g *Grid) PlaceFood(f Food) error {
	if !g.InBounds(f.Position) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, f.Position)
	}
	idx := g.index(f.Position)
	if g.cells[idx] != CellEmpty {
		return fmt.Errorf("%w: %v is %s", ErrCellOccupied, f.Position, g.cells[idx])
	}
	g.cells[idx] = CellFood
	g.foods = append(g.foods, f)
	return nil
}

// RemoveFood takes the item at p off the board
func (g *Grid) RemoveFood(p core.Point) (Food, bool) {
	i := g.foodIndex(p)
	if i < 0 {
		return Food{}, false
	}
	f := g.foods[i]
	g.foods = slices.Delete(g.foods, i, i+1)
	g.cells[g.index(p)] = CellEmpty
	return f, true
}

// FoodAt returns the item at p, if any
func (g *Grid) FoodAt(p core.Point) (Food, bool) {
	i := g.foodIndex(p)
	if i < 0 {
		return Food{}, false
	}
	return g.foods[i], true
}

// Foods returns the items in spawn order
func (g *Grid) Foods() []Food {
	return slices.Clone(g.foods)
}

// FoodCount returns the number of items on the board
func (g *Grid) FoodCount() int {
	return len(g.foods)
}

// ClearFood removes every item
func (g *Grid) ClearFood() {
	for _, f := range g.foods {
		g.cells[g.index(f.Position)] = CellEmpty
	}
	g.foods = g.foods[:0]
}

func (g *Grid) foodIndex(p core.Point) int {
	if !g.InBounds(p) || g.cells[g.index(p)] != CellFood {
		return -1
	}
	return slices.IndexFunc(g.foods, func(f Food) bool { return f.Position == p })
}
