package travelstate

import "github.com/katalvlaran/viaduct/calendar"

// NoStopSequence is the sentinel "absent" value for StopSequence,
// mirroring calendar.NoServiceID's -1 convention (spec §6.3).
const NoStopSequence = -1

// State is the scalar tuple a traversal transforms (spec §3.1).
//
// State is comparable with ==: every field is a fixed-size scalar or a
// pointer, so two States produced by equal inputs compare equal. The
// Combination payload's single-slot cache (spec §9.6) and the
// round-trip-preservation property test (spec §8.1) both depend on
// this.
type State struct {
	// Time is absolute wall-clock seconds since an epoch.
	Time int64

	// Weight is the accumulated generalized cost. Monotone
	// non-decreasing under a successful forward Walk.
	Weight int64

	// DistWalked is meters walked on street edges so far this trip.
	DistWalked float64

	// NumTransfers counts transit boardings taken so far.
	NumTransfers int

	// PrevEdgeID identifies the edge that produced this State, for
	// path reconstruction by a host graph driver (spec §3.1). Empty
	// means no edge produced this State (it is a search origin).
	//
	// travelstate intentionally does not import the payload or
	// tripgraph packages: an opaque ID — rather than a *payload.EdgePayload
	// or *tripgraph.Edge pointer — is what lets payload depend on
	// travelstate without a cyclic dependency back from travelstate to
	// payload, the same decoupling core.Edge.ID already buys the
	// teacher's own graph package.
	PrevEdgeID string

	// TripID identifies the currently-boarded trip. Empty means absent.
	TripID string

	// StopSequence is the ordinal of TripID's current stop.
	// NoStopSequence means absent.
	StopSequence int

	// ServicePeriod is a cached pointer into the ServiceCalendar valid
	// at Time, or nil if absent. TripBoard/TripAlight/HeadwayBoard/
	// HeadwayAlight/Headway set it to the period they resolved; they
	// re-resolve the period from Time on every walk and do not read it.
	ServicePeriod *calendar.ServicePeriod

	// PrevStreetWay is the Way id of the Street edge that produced
	// this State; HasPrevStreetWay is false if the producing edge was
	// not a Street (or this State is a search origin). Two plain
	// fields rather than a *int64, so State keeps comparing by value
	// with == (a pointer field would make the Combination cache, spec
	// §9.6, compare by allocation identity instead of by way id).
	// Kept here, rather than derived by inspecting PrevEdgeID's
	// payload, so Street's turn-penalty rule (spec §4.2 step 3) stays
	// a pure function of State without payload needing a lookup back
	// into whatever graph owns the edge.
	PrevStreetWay    int64
	HasPrevStreetWay bool
}

// WithPrevEdge returns a copy of s with PrevEdgeID set to id, without
// mutating the receiver. Payload variants do not call it; a graph
// driver (tripgraph.ShortestPath) stamps each State a walk produces.
func (s State) WithPrevEdge(id string) State {
	s.PrevEdgeID = id
	return s
}
