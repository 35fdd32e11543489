package payload

import "github.com/katalvlaran/viaduct/travelstate"

// ElapseTime adds a fixed delta to both time and weight on walk, and
// subtracts it on walk-back — a schedule-free "this takes N seconds"
// primitive, for legs whose duration is fixed regardless of time of day
// (spec §4.6).
type ElapseTime struct {
	Seconds int64
}

var _ EdgePayload = ElapseTime{}

// Kind returns KindElapseTime.
func (e ElapseTime) Kind() Kind { return KindElapseTime }

// Walk advances time and weight by e.Seconds.
func (e ElapseTime) Walk(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	out := state
	out.Time += e.Seconds
	out.Weight += e.Seconds
	return out, true
}

// WalkBack subtracts e.Seconds from time, still adding it to weight
// (weight accumulates in both directions per spec §4.1).
func (e ElapseTime) WalkBack(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	out := state
	out.Time -= e.Seconds
	out.Weight += e.Seconds
	return out, true
}
