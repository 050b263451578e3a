// Package event provides a synchronous pub-sub bus and the event types
// published by the tally store. It lets components observe state
// transitions without holding a store reference: the TUI refreshes on
// state.changed, and the debug logger traces everything via a wildcard
// subscription.
package event
