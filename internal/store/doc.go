// Package store implements the shared application state for tally.
//
// A single Store owns one State value (a counter and a note string) and is
// the only component allowed to replace it. Mutation goes through a pure
// transition function driven by a closed set of actions, and every
// transition notifies registered subscribers and publishes events on the
// application bus. Components receive the Store (or one of its narrow
// views) by explicit reference; there is no ambient lookup.
package store
