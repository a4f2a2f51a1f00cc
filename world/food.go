package world

import (
	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/poison"
)

// FoodType is the risk class of a food item
type FoodType uint8

const (
	Normal FoodType = iota
	Suspicious
	Valuable
)

func (f FoodType) String() string {
	switch f {
	case Normal:
		return "Normal"
	case Suspicious:
		return "Suspicious"
	case Valuable:
		return "Valuable"
	default:
		return "Unknown"
	}
}

// Growth returns the segments added when this type is eaten
func (f FoodType) Growth() int {
	switch f {
	case Suspicious:
		return parameter.GrowthSuspicious
	case Valuable:
		return parameter.GrowthValuable
	default:
		return parameter.GrowthNormal
	}
}

// Food is an item on the board
// Poison is non-nil iff Poisoned
type Food struct {
	Position core.Point
	Type     FoodType
	Growth   int
	Poisoned bool
	Poison   *poison.Template
}

// NewFood builds an unpoisoned item with the growth of its type
func NewFood(p core.Point, t FoodType) Food {
	return Food{Position: p, Type: t, Growth: t.Growth()}
}

// WithPoison returns a copy carrying tmpl
func (f Food) WithPoison(tmpl poison.Template) Food {
	f.Poisoned = true
	f.Poison = &tmpl
	return f
}
