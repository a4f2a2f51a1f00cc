package event

import "testing"

type recorder struct {
	types []EventType
	seen  []EventType
	ctxs  []string
}

func (r *recorder) HandleEvent(ctx string, ev GameEvent) {
	r.seen = append(r.seen, ev.Type)
	r.ctxs = append(r.ctxs, ctx)
}

func (r *recorder) EventTypes() []EventType { return r.types }

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	router := NewRouter[string](q)

	first := &recorder{types: []EventType{EventMove, EventDeath}}
	second := &recorder{types: []EventType{EventDeath}}
	router.Register(first)
	router.Register(second)

	var order []string
	router.Register(HandlerFunc[string]{
		Types: []EventType{EventDeath},
		Fn:    func(_ string, _ GameEvent) { order = append(order, "func") },
	})

	q.Push(GameEvent{Type: EventMove})
	q.Push(GameEvent{Type: EventGrow})
	q.Push(GameEvent{Type: EventDeath})

	if n := router.DispatchAll("ctx"); n != 3 {
		t.Errorf("Expected 3 events consumed, got %d", n)
	}

	if len(first.seen) != 2 || first.seen[0] != EventMove || first.seen[1] != EventDeath {
		t.Errorf("Unexpected first handler events: %v", first.seen)
	}
	if len(second.seen) != 1 || second.seen[0] != EventDeath {
		t.Errorf("Unexpected second handler events: %v", second.seen)
	}
	if len(order) != 1 {
		t.Errorf("Expected func handler called once, got %d", len(order))
	}
	if first.ctxs[0] != "ctx" {
		t.Errorf("Expected context to be passed through, got %q", first.ctxs[0])
	}
	if router.HandlerCount(EventDeath) != 3 {
		t.Errorf("Expected 3 death handlers, got %d", router.HandlerCount(EventDeath))
	}
	if router.HasHandlers(EventGrow) {
		t.Error("Expected no Grow handlers")
	}
}

func TestRouterReset(t *testing.T) {
	q := NewEventQueue()
	router := NewRouter[string](q)
	rec := &recorder{types: []EventType{EventMove}}
	router.Register(rec)

	router.Reset()
	q.Push(GameEvent{Type: EventMove})
	router.DispatchAll("")

	if len(rec.seen) != 0 {
		t.Errorf("Expected no deliveries after reset, got %v", rec.seen)
	}
	if q.Len() != 0 {
		t.Error("Expected queue consumed even without handlers")
	}
}
