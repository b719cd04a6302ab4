// Package event handles triggering of operations without direct dependency
// between the mind map core and the interaction surfaces.
package event

import (
	"context"
	"sync"

	"mindflow/src/pkg/log"
)

// EventType represents the type of event
type EventType int

const (
	NodeAdded EventType = iota
	NodeDeleted
	NodeUpdated
	NodeReordered
	ActiveChanged
	LayoutUpdated
)

// String returns the string representation of the EventType.
func (t EventType) String() string {
	switch t {
	case NodeAdded:
		return "node_added"
	case NodeDeleted:
		return "node_deleted"
	case NodeUpdated:
		return "node_updated"
	case NodeReordered:
		return "node_reordered"
	case ActiveChanged:
		return "active_changed"
	case LayoutUpdated:
		return "layout_updated"
	default:
		return "unknown"
	}
}

// Event represents an event with its type and associated data
type Event struct {
	Type EventType
	Data interface{}
}

// EventHandler is a function type for event handlers
type EventHandler func(Event)

// EventManager manages event subscriptions and publications
type EventManager struct {
	subscribers map[EventType][]EventHandler
	mu          sync.RWMutex
	logger      *log.Logger
}

// NewEventManager creates a new EventManager instance
func NewEventManager(logger *log.Logger) *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
		logger:      logger,
	}
}

// Subscribe adds a new event handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// LogMutations subscribes an observer for every event type that records
// published events in the info log, so the log files carry an audit
// trail of tree mutations and selection changes.
func (em *EventManager) LogMutations() {
	types := []EventType{NodeAdded, NodeDeleted, NodeUpdated, NodeReordered, ActiveChanged, LayoutUpdated}
	for _, eventType := range types {
		eventType := eventType
		em.Subscribe(eventType, func(e Event) {
			em.logger.Info(context.Background(), "Event published", log.Fields{
				"event": eventType.String(),
				"data":  e.Data,
			})
		})
	}
}

// Publish sends an event to all subscribed handlers
func (em *EventManager) Publish(event Event) {
	em.mu.RLock()
	defer em.mu.RUnlock()
	for _, handler := range em.subscribers[event.Type] {
		go func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					em.logger.Error(context.Background(), "Panic in event handler", log.Fields{
						"event": event,
						"panic": r,
					})
				}
			}()
			h(event)
		}(handler)
	}
}
