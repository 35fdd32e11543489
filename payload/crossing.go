package payload

import "github.com/katalvlaran/viaduct/travelstate"

// Crossing represents the in-vehicle segment between two consecutive
// stops of a trip: a mapping from trip_id to the fixed number of
// seconds that trip takes to cross this segment (spec §4.7).
type Crossing struct {
	// CrossingTimes maps a trip id to its crossing time in seconds.
	// Distinct trips may share a Crossing when they run the same
	// physical segment at the same scheduled duration.
	CrossingTimes map[string]int64
}

var _ EdgePayload = Crossing{}

// Kind returns KindCrossing.
func (c Crossing) Kind() Kind { return KindCrossing }

// Walk looks up state.TripID in c.CrossingTimes; if absent, the crossing
// cannot be taken from this state and Walk fails. Otherwise time and
// weight both advance by the looked-up duration.
func (c Crossing) Walk(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	seconds, found := c.CrossingTimes[state.TripID]
	if !found {
		return travelstate.State{}, false
	}

	out := state
	out.Time += seconds
	out.Weight += seconds

	return out, true
}

// WalkBack mirrors Walk, subtracting the looked-up duration from time.
func (c Crossing) WalkBack(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	seconds, found := c.CrossingTimes[state.TripID]
	if !found {
		return travelstate.State{}, false
	}

	out := state
	out.Time -= seconds
	out.Weight += seconds

	return out, true
}
