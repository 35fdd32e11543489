package payload

import (
	"github.com/katalvlaran/viaduct/travelstate"
	"github.com/katalvlaran/viaduct/tzdata"
)

// Wait is a timed boundary that forces the traveler past a fixed
// seconds-since-local-midnight instant in a given timezone — for
// example, "the station doesn't open until 06:00" (spec §4.5).
type Wait struct {
	End      int64 // seconds since local midnight
	Timezone *tzdata.Timezone
}

var _ EdgePayload = Wait{}

// Kind returns KindWait.
func (w Wait) Kind() Kind { return KindWait }

// Walk advances state.Time to the next local occurrence of w.End at or
// after state.Time (today if not yet past End, tomorrow otherwise), and
// adds the elapsed seconds to Weight with no reluctance multiplier
// (spec §4.5).
func (w Wait) Walk(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	nowTOD, err := w.Timezone.TimeSinceMidnight(state.Time)
	if err != nil {
		return travelstate.State{}, false
	}

	var delta int64
	if nowTOD <= w.End {
		delta = w.End - nowTOD
	} else {
		delta = w.End + tzdata.SecondsPerDay - nowTOD
	}

	out := state
	out.Time += delta
	out.Weight += delta

	return out, true
}

// WalkBack sets state.Time to the most recent local occurrence of w.End
// at or before state.Time, adding the elapsed seconds to Weight
// (spec §4.5).
func (w Wait) WalkBack(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	nowTOD, err := w.Timezone.TimeSinceMidnight(state.Time)
	if err != nil {
		return travelstate.State{}, false
	}

	midnight := state.Time - nowTOD

	var candidate int64
	if w.End <= nowTOD {
		candidate = midnight + w.End
	} else {
		candidate = midnight - tzdata.SecondsPerDay + w.End
	}

	out := state
	out.Time = candidate
	out.Weight += state.Time - candidate

	return out, true
}
