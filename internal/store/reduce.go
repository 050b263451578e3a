package store

import "fmt"

// Reduce computes the next state from the current state and an action.
// It is pure: no side effects, no I/O, deterministic, and the input state is
// never mutated (State is a value type, so s is already a copy).
//
// Untouched fields carry forward unchanged; a transition never partially
// overwrites the state.
//
// Reduce panics on a nil action. The Action set is sealed, so this is the
// only representable way to violate the closed-kind contract, and it is a
// programming error rather than a recoverable condition. It must never be a
// silent no-op.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Increment:
		s.Count++
		return s
	case Decrement:
		s.Count--
		return s
	case SetText:
		s.Text = a.Value
		return s
	}
	panic(fmt.Sprintf("store: unhandled action %T submitted to Reduce", a))
}
