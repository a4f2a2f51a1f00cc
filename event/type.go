package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventGameStarted marks the Ready to Running transition and every restart
	// Trigger: Game.Start, Game.Restart | Payload: nil
	EventGameStarted EventType = iota

	// EventGamePaused and EventGameResumed follow the Running/Paused toggle
	// Trigger: Game.Pause, Game.Resume, Game.TogglePause | Payload: nil
	EventGamePaused
	EventGameResumed

	// EventMove signals one head step
	// Trigger: tick movement phase | Payload: *MovePayload
	EventMove

	// EventGrow signals body growth after eating
	// Payload: *GrowPayload
	EventGrow

	// EventPoisoned signals a poison attached (or refreshed) on the snake
	// Consumer: audio.Handler | Payload: *PoisonedPayload
	EventPoisoned

	// EventPoisonExpired signals a timed poison running out
	// Payload: *PoisonExpiredPayload
	EventPoisonExpired

	// EventEvolutionStage signals an Evolving stage advance or terminal resolution
	// Consumer: audio.Handler | Payload: *EvolutionStagePayload
	EventEvolutionStage

	// EventAbilityUnlocked signals a newly unlocked ability
	// Consumer: audio.Handler, history.Store | Payload: *AbilityUnlockedPayload
	EventAbilityUnlocked

	// EventFoodConsumed signals the head eating an item
	// Consumer: audio.Handler, history.Store | Payload: *FoodPayload
	EventFoodConsumed

	// EventFoodSpawned signals a new item on the board
	// Payload: *FoodPayload
	EventFoodSpawned

	// EventStyleChanged signals the world theme flipping
	// Payload: *StyleChangedPayload
	EventStyleChanged

	// EventDifficultyChanged signals a difficulty step
	// Payload: *DifficultyChangedPayload
	EventDifficultyChanged

	// EventDeath signals the snake dying; always followed by EventGameOver
	// Consumer: audio.Handler | Payload: *DeathPayload
	EventDeath

	// EventGameOver carries the finished life for persistence
	// Consumer: history.Store | Payload: *GameOverPayload
	EventGameOver

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventGameStarted:       "GameStarted",
	EventGamePaused:        "GamePaused",
	EventGameResumed:       "GameResumed",
	EventMove:              "Move",
	EventGrow:              "Grow",
	EventPoisoned:          "Poisoned",
	EventPoisonExpired:     "PoisonExpired",
	EventEvolutionStage:    "EvolutionStage",
	EventAbilityUnlocked:   "AbilityUnlocked",
	EventFoodConsumed:      "FoodConsumed",
	EventFoodSpawned:       "FoodSpawned",
	EventStyleChanged:      "StyleChanged",
	EventDifficultyChanged: "DifficultyChanged",
	EventDeath:             "Death",
	EventGameOver:          "GameOver",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// AllTypes lists every event type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, eventTypeCount)
	for i := range out {
		out[i] = EventType(i)
	}
	return out
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      int64 // Game tick that produced the event
	Timestamp time.Time
}
