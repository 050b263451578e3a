package store

// State is the single value the store manages. It is a plain value type:
// transitions produce a new State rather than mutating one in place, so a
// reader never observes a partially updated pair.
type State struct {
	// Count is the counter value. Signed and unbounded; no clamping.
	Count int
	// Text is the note content. Empty string when unset.
	Text string
}

// DefaultState returns the initial state used when the caller supplies none:
// a zero counter and an empty note.
func DefaultState() State {
	return State{}
}
