package payload

import "github.com/katalvlaran/viaduct/travelstate"

// Link is a zero-cost, zero-time edge used to glue together co-located
// vertices — for example, two representations of the same physical stop
// in different sub-graphs (spec §4.4).
type Link struct {
	Name string
}

var _ EdgePayload = Link{}

// Kind returns KindLink.
func (l Link) Kind() Kind { return KindLink }

// Walk returns state unchanged (PrevEdgeID is stamped separately by the
// driver via travelstate.State.WithPrevEdge, per spec §4.4).
func (l Link) Walk(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	return state, true
}

// WalkBack returns state unchanged, identically to Walk: Link has no
// direction-dependent behavior.
func (l Link) WalkBack(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	return state, true
}
