package store

import (
	"sync"

	"github.com/Iron-Ham/tally/internal/event"
)

// Subscriber is a callback invoked with the new state after every
// transition.
type Subscriber func(State)

// Unsubscribe removes a subscription. Calling it more than once is safe.
type Unsubscribe func()

// subscriber tracks one registered callback. Inactive entries are pruned on
// the next dispatch rather than removed eagerly, so unsubscribing from
// inside a notification is safe.
type subscriber struct {
	fn     Subscriber
	active bool
}

// Store owns the live State and is the only writer of it. Operations are
// methods on the Store, so their identity is stable for the lifetime of the
// instance; pass the Store (or a view over it) by reference to whichever
// component needs it.
//
// Operations are synchronous: the transition, the state replacement,
// subscriber notification, and event publication all complete before the
// operation returns. The host UI loop is the single writer; the mutex
// additionally makes State safe to read from other goroutines.
type Store struct {
	mu    sync.Mutex
	state State
	subs  []*subscriber
	bus   *event.Bus
	noop  bool
}

// New creates a store holding the default initial state. bus may be nil if
// no component needs bus-based observation.
func New(bus *event.Bus) *Store {
	return NewWithInitial(DefaultState(), bus)
}

// NewWithInitial creates a store holding a caller-supplied initial state.
func NewWithInitial(initial State, bus *event.Bus) *Store {
	return &Store{state: initial, bus: bus}
}

// Noop returns a store whose operations do nothing and whose state is
// permanently the default. Views constructed without a live store fall back
// to it, so a component used without a store reads initial defaults and its
// operations silently no-op instead of crashing.
func Noop() *Store {
	return &Store{noop: true}
}

// Live reports whether this store applies transitions. It is false only for
// the Noop store.
func (s *Store) Live() bool {
	return !s.noop
}

// State returns the current state. Safe to call from any goroutine.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Increment raises the counter by one. The note is untouched.
func (s *Store) Increment() {
	s.dispatch(Increment{})
}

// Decrement lowers the counter by one. The note is untouched.
func (s *Store) Decrement() {
	s.dispatch(Decrement{})
}

// SetText replaces the note content. The counter is untouched. An empty
// string is a valid value, not a reset-to-default.
func (s *Store) SetText(value string) {
	s.dispatch(SetText{Value: value})
}

// Subscribe registers a callback invoked with the new state after every
// transition, in registration order, on the dispatching goroutine. The
// returned Unsubscribe is idempotent.
func (s *Store) Subscribe(fn Subscriber) Unsubscribe {
	if s.noop {
		return func() {}
	}

	s.mu.Lock()
	sub := &subscriber{fn: fn, active: true}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		sub.active = false
		s.mu.Unlock()
	}
}

// dispatch runs one transition to completion: reduce, replace, notify,
// publish. Dispatches never overlap for a given store instance because the
// host UI loop serializes them; the mutex covers background readers.
func (s *Store) dispatch(a Action) {
	if s.noop {
		return
	}

	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next

	// Snapshot active subscribers and drop unsubscribed entries while the
	// lock is held; callbacks run outside it.
	active := make([]*subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.active {
			active = append(active, sub)
		}
	}
	s.subs = active
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(event.NewActionDispatchedEvent(a.kind()))
	}

	for _, sub := range active {
		sub.fn(next)
	}

	if s.bus != nil {
		s.bus.Publish(event.NewStateChangedEvent(prev.Count, prev.Text, next.Count, next.Text))
	}
}
