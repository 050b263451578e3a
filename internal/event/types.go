package event

import "time"

// Event is the interface all published events implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g. "state.changed").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeStateChanged     = "state.changed"
	TypeActionDispatched = "action.dispatched"
)

// baseEvent provides the common fields. Embed it in concrete event types to
// satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// StateChangedEvent is emitted after every store transition. It carries the
// state before and after as plain fields so subscribers do not need the
// store package.
type StateChangedEvent struct {
	baseEvent
	PrevCount int    // Counter value before the transition
	PrevText  string // Note content before the transition
	Count     int    // Counter value after the transition
	Text      string // Note content after the transition
}

// NewStateChangedEvent creates a StateChangedEvent.
func NewStateChangedEvent(prevCount int, prevText string, count int, text string) StateChangedEvent {
	return StateChangedEvent{
		baseEvent: newBaseEvent(TypeStateChanged),
		PrevCount: prevCount,
		PrevText:  prevText,
		Count:     count,
		Text:      text,
	}
}

// ActionDispatchedEvent is emitted when an action is submitted to the
// transition function, before the matching StateChangedEvent.
type ActionDispatchedEvent struct {
	baseEvent
	Kind string // Action kind name (e.g. "increment", "set_text")
}

// NewActionDispatchedEvent creates an ActionDispatchedEvent.
func NewActionDispatchedEvent(kind string) ActionDispatchedEvent {
	return ActionDispatchedEvent{
		baseEvent: newBaseEvent(TypeActionDispatched),
		Kind:      kind,
	}
}
