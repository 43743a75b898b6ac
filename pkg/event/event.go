// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	SimulationStarted  Type = "simulation_started"
	SimulationStopped  Type = "simulation_stopped"
	FlakeLanded        Type = "flake_landed"
	FlakeMelted        Type = "flake_melted"
	FlakeRespawned     Type = "flake_respawned"
	ObstaclesRefreshed Type = "obstacles_refreshed"
	PointerMoved       Type = "pointer_moved"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// FlakeEvent contains information about a single flake's lifecycle
type FlakeEvent struct {
	BaseEvent
	Index int // slot index of the flake in the simulation
}

// NewFlakeEvent creates a new flake event
func NewFlakeEvent(eventType Type, source interface{}, index int) *FlakeEvent {
	return &FlakeEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Index: index,
	}
}

// ObstacleEvent reports the result of an obstacle set rebuild
type ObstacleEvent struct {
	BaseEvent
	Count int // obstacles in the freshly built set
}

// NewObstacleEvent creates a new obstacle event
func NewObstacleEvent(source interface{}, count int) *ObstacleEvent {
	return &ObstacleEvent{
		BaseEvent: BaseEvent{
			EventType: ObstaclesRefreshed,
			Source:    source,
		},
		Count: count,
	}
}
