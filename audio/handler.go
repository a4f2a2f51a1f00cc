package audio

import (
	"github.com/lixenwraith/snake-poison/engine"
	"github.com/lixenwraith/snake-poison/event"
)

// Player is the part of SoundManager the handler needs
type Player interface {
	Play(t SoundType)
}

// Handler turns game events into sound effects
type Handler struct {
	player Player
}

func NewHandler(p Player) *Handler {
	return &Handler{player: p}
}

func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFoodConsumed,
		event.EventPoisoned,
		event.EventEvolutionStage,
		event.EventAbilityUnlocked,
		event.EventDeath,
	}
}

func (h *Handler) HandleEvent(_ engine.Snapshot, ev event.GameEvent) {
	switch ev.Type {
	case event.EventFoodConsumed:
		// Poisoned food is voiced by the Poisoned event that follows
		if p, ok := ev.Payload.(*event.FoodPayload); ok && !p.Food.Poisoned {
			h.player.Play(SoundEat)
		}
	case event.EventPoisoned:
		h.player.Play(SoundPoison)
	case event.EventEvolutionStage:
		// The terminal stage is voiced by its unlock
		if p, ok := ev.Payload.(*event.EvolutionStagePayload); ok && !p.Terminal {
			h.player.Play(SoundEvolve)
		}
	case event.EventAbilityUnlocked:
		h.player.Play(SoundUnlock)
	case event.EventDeath:
		h.player.Play(SoundDeath)
	}
}
