package history

import (
	"log"

	"github.com/lixenwraith/snake-poison/engine"
	"github.com/lixenwraith/snake-poison/event"
)

// Handler feeds game events into a Store and saves on game over and unlock
type Handler struct {
	store *Store
}

func NewHandler(s *Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFoodConsumed,
		event.EventAbilityUnlocked,
		event.EventGameOver,
	}
}

func (h *Handler) HandleEvent(_ engine.Snapshot, ev event.GameEvent) {
	switch ev.Type {
	case event.EventFoodConsumed:
		h.store.RecordFood()

	case event.EventAbilityUnlocked:
		p, ok := ev.Payload.(*event.AbilityUnlockedPayload)
		if !ok {
			return
		}
		if h.store.AddAbility(p.Ability) {
			h.save()
		}

	case event.EventGameOver:
		p, ok := ev.Payload.(*event.GameOverPayload)
		if !ok {
			return
		}
		h.store.RecordGame(p.Record, p.Abilities, p.Score)
		h.save()
	}
}

func (h *Handler) save() {
	if err := h.store.Save(); err != nil {
		log.Printf("history: %v", err)
	}
}
