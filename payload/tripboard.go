package payload

import (
	"sort"

	"github.com/katalvlaran/viaduct/calendar"
	"github.com/katalvlaran/viaduct/travelstate"
	"github.com/katalvlaran/viaduct/tzdata"
)

// TripBoard is the canonical transit-boarding edge: a scheduled trip's
// departures from one stop, sorted by depart (spec §4.8).
type TripBoard struct {
	Calendar  *calendar.ServiceCalendar
	Timezone  *tzdata.Timezone
	ServiceID calendar.ServiceID

	// TripIDs, Departs and StopSequences are parallel arrays of length
	// n, sorted ascending by Departs. Departs is seconds since local
	// midnight and may include values > 86400 for trips that depart
	// before midnight but are still attributed to this service day's
	// tail (spec §9.4's "virtual timeline").
	TripIDs       []string
	Departs       []int64
	StopSequences []int

	// Overage is the largest amount by which any Departs entry exceeds
	// 86400, or -1 if no entry does (spec §6.3).
	Overage int64
}

var _ EdgePayload = TripBoard{}

// Kind returns KindTripBoard.
func (b TripBoard) Kind() Kind { return KindTripBoard }

// resolvePeriod finds the service period covering or following t that
// carries b.ServiceID (spec §4.8 step 1).
func (b TripBoard) resolvePeriod(t int64) (*calendar.ServicePeriod, bool) {
	period, ok := b.Calendar.PeriodOfOrAfter(t)
	if !ok {
		return nil, false
	}
	if period.HasService(b.ServiceID) {
		return period, true
	}
	return b.Calendar.NextWithService(period, b.ServiceID)
}

// Walk finds the earliest boarding at or after state.Time, rolling
// forward to subsequent service days until one is found or the
// calendar is exhausted (spec §4.8 steps 1-6).
func (b TripBoard) Walk(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	if len(b.Departs) == 0 {
		return travelstate.State{}, false
	}

	period, ok := b.resolvePeriod(state.Time)
	if !ok {
		return travelstate.State{}, false
	}

	utcOffset, err := b.Timezone.UTCOffset(state.Time)
	if err != nil {
		return travelstate.State{}, false
	}
	nowTOD := calendar.NormalizeTime(period, utcOffset, state.Time)

	i := sort.Search(len(b.Departs), func(i int) bool { return b.Departs[i] >= nowTOD })
	for i == len(b.Departs) {
		next, ok := period.Next()
		if !ok {
			return travelstate.State{}, false
		}
		period, ok = b.Calendar.NextWithService(next, b.ServiceID)
		if !ok {
			return travelstate.State{}, false
		}
		// A fresh service day always has a boarding at or after its own
		// midnight, since Departs is non-empty and non-negative.
		i = 0
	}

	tBoard := calendar.DatumMidnight(period, utcOffset) + b.Departs[i]

	out := state
	out.Time = tBoard
	out.Weight += (tBoard - state.Time) + opts.TransferPenalty
	out.NumTransfers++
	out.TripID = b.TripIDs[i]
	out.StopSequence = b.StopSequences[i]
	out.ServicePeriod = period

	return out, true
}

// WalkBack is disboarding without cost: trip context clears, time is
// unchanged, and num_transfers decrements (spec §4.8).
func (b TripBoard) WalkBack(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	out := state
	out.TripID = ""
	out.StopSequence = travelstate.NoStopSequence
	out.NumTransfers--

	return out, true
}
