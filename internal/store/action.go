package store

// Action describes one requested state transition. The set of actions is
// closed: the unexported kind method keeps foreign implementations out, so
// the transition function never sees an action it does not handle (a nil
// Action remains the one representable contract violation, and it is fatal).
//
// Actions are transient values. Each is consumed exactly once by Reduce and
// discarded; nothing retains them.
type Action interface {
	// kind returns the wire-style name of the action, used for event
	// publication and diagnostics.
	kind() string
}

// Increment requests count+1.
type Increment struct{}

// Decrement requests count-1.
type Decrement struct{}

// SetText requests replacing the note content. An absent value at the call
// site is the empty string; there is no "unset" distinct from "".
type SetText struct {
	Value string
}

func (Increment) kind() string { return "increment" }
func (Decrement) kind() string { return "decrement" }
func (SetText) kind() string   { return "set_text" }
