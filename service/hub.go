package service

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
)

var (
	ErrDuplicate  = errors.New("service already registered")
	ErrMissingDep = errors.New("depends on unregistered service")
	ErrCycle      = errors.New("circular dependency detected in services")
)

// Hub owns registered services and drives their lifecycle in dependency order
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string // registration order, keeps the sort stable
	sorted   []string // topological order, computed on InitAll
	started  []string // services that completed Start, for rollback
}

func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds a service; the cached order is recomputed on the next InitAll
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	h.services[name] = svc
	h.order = append(h.order, name)
	h.sorted = nil
	return nil
}

func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet retrieves a service and casts it to T
// Panics if the service is missing or of another type
func MustGet[T any](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic(fmt.Sprintf("service not found: %s", name))
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: type mismatch, got %T", name, svc))
	}
	return typed
}

// InitAll calls Init in dependency order
// On failure, already-initialized services are stopped in reverse order
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	var initialized []string
	for _, name := range h.sorted {
		if err := h.services[name].Init(); err != nil {
			for i := len(initialized) - 1; i >= 0; i-- {
				h.stop(initialized[i])
			}
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
		initialized = append(initialized, name)
	}
	return nil
}

// StartAll calls Start in dependency order
// On failure, already-started services are stopped in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil
	for _, name := range h.sorted {
		if err := h.services[name].Start(); err != nil {
			for i := len(h.started) - 1; i >= 0; i-- {
				h.stop(h.started[i])
			}
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
	}
	return nil
}

// StopAll stops started services in reverse order
// Errors are logged so every service gets its Stop call
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.started) - 1; i >= 0; i-- {
		h.stop(h.started[i])
	}
	h.started = nil
}

func (h *Hub) stop(name string) {
	if err := h.services[name].Stop(); err != nil {
		log.Printf("service %s stop: %v", name, err)
	}
}

// topologicalSort orders services with Kahn's algorithm
// Ties resolve in registration order
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)

	for _, name := range h.order {
		inDegree[name] = 0
	}
	for _, name := range h.order {
		for _, dep := range h.services[name].Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s %w: %s", name, ErrMissingDep, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for _, name := range h.order {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	result := make([]string, 0, len(h.services))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, ErrCycle
	}
	return result, nil
}

// Names returns registered service names in registration order
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.order)
}
