package payload

import "github.com/katalvlaran/viaduct/travelstate"

// EdgePayload is the contract every edge kind implements (spec §4.1).
//
// Walk takes a traveler at state across the edge in the forward
// direction of time, returning the resulting state, or (State{}, false)
// if the edge is not traversable from state. WalkBack is the mirror:
// the traveler is arriving at state and must have taken this edge;
// WalkBack returns the state at the far end.
//
// Invariants every implementation upholds (spec §4.1; the property
// tests check the monotonicity laws for Street, Egress, Link,
// ElapseTime and Crossing, and each variant's own tests cover it):
//   - Walk never decreases Time or Weight; WalkBack never increases Time,
//     and never decreases Weight either.
//   - Walk and WalkBack are deterministic: identical (payload, state,
//     options) always produce the identical result.
//   - Neither reads nor writes any data outside payload, state, options.
type EdgePayload interface {
	// Kind reports this payload's discriminator (spec §6.2).
	Kind() Kind

	// Walk advances state forward across this edge.
	Walk(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool)

	// WalkBack retreats state backward across this edge.
	WalkBack(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool)
}
