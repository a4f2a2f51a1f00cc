package event

import (
	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/evolution"
	"github.com/lixenwraith/snake-poison/poison"
	"github.com/lixenwraith/snake-poison/snake"
	"github.com/lixenwraith/snake-poison/world"
)

// MovePayload contains the new head position
type MovePayload struct {
	Head core.Point
}

// GrowPayload contains the growth step and resulting length
type GrowPayload struct {
	Amount int
	Length int
}

// PoisonedPayload describes the poison picked up
// Refreshed is true when a non-stackable kind reset an existing instance
type PoisonedPayload struct {
	Kind      poison.Kind
	Intensity float64
	Refreshed bool
}

type PoisonExpiredPayload struct {
	Kind poison.Kind
}

// EvolutionStagePayload mirrors one evolution.Result
type EvolutionStagePayload struct {
	Kind     poison.Kind
	Stage    int
	Name     string
	Message  string
	Terminal bool
}

type AbilityUnlockedPayload struct {
	Ability evolution.Ability
}

// FoodPayload is shared by consumed and spawned events
type FoodPayload struct {
	Food world.Food
}

type StyleChangedPayload struct {
	From world.Style
	To   world.Style
}

type DifficultyChangedPayload struct {
	Difficulty     float64
	RiskPreference float64
}

// DeathPayload contains the cause and where the head ended
type DeathPayload struct {
	Cause    string
	Position core.Point
}

// GameOverPayload carries the finished life and the abilities held at its end
type GameOverPayload struct {
	Record    snake.Record
	Abilities []evolution.Ability
	Score     int
}
