package store

// CounterView is a narrow projection over a store exposing only the counter
// concern. Components that count have no way to touch the note.
type CounterView struct {
	s *Store
}

// NewCounterView creates a counter view over the given store. A nil store
// yields a view backed by the Noop store: reads return defaults, operations
// do nothing, and no fault is raised. Live reports which case applies.
func NewCounterView(s *Store) CounterView {
	if s == nil {
		s = Noop()
	}
	return CounterView{s: s}
}

// Count returns the current counter value.
func (v CounterView) Count() int {
	return v.s.State().Count
}

// Increment raises the counter by one.
func (v CounterView) Increment() {
	v.s.Increment()
}

// Decrement lowers the counter by one.
func (v CounterView) Decrement() {
	v.s.Decrement()
}

// Live reports whether the view is backed by a real store.
func (v CounterView) Live() bool {
	return v.s.Live()
}

// TextView is a narrow projection over a store exposing only the note
// concern.
type TextView struct {
	s *Store
}

// NewTextView creates a text view over the given store. A nil store yields
// a view backed by the Noop store, same as NewCounterView.
func NewTextView(s *Store) TextView {
	if s == nil {
		s = Noop()
	}
	return TextView{s: s}
}

// Text returns the current note content.
func (v TextView) Text() string {
	return v.s.State().Text
}

// SetText replaces the note content.
func (v TextView) SetText(value string) {
	v.s.SetText(value)
}

// Live reports whether the view is backed by a real store.
func (v TextView) Live() bool {
	return v.s.Live()
}
