package payload

import (
	"sort"

	"github.com/katalvlaran/viaduct/calendar"
	"github.com/katalvlaran/viaduct/travelstate"
	"github.com/katalvlaran/viaduct/tzdata"
)

// TripAlight is the mirror of TripBoard keyed on arrival times: a
// scheduled trip's arrivals into one stop, sorted by Arrivals (spec
// §4.9). The source's duplicate alight.h/tripalight.h headers are
// treated as this one logical type (Design Note 9.7).
type TripAlight struct {
	Calendar  *calendar.ServiceCalendar
	Timezone  *tzdata.Timezone
	ServiceID calendar.ServiceID

	TripIDs       []string
	Arrivals      []int64
	StopSequences []int

	Overage int64
}

var _ EdgePayload = TripAlight{}

// Kind returns KindTripAlight.
func (a TripAlight) Kind() Kind { return KindTripAlight }

// Walk is a no-cost trip-clear, mirroring TripBoard's WalkBack (spec
// §4.9).
func (a TripAlight) Walk(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	out := state
	out.TripID = ""
	out.StopSequence = travelstate.NoStopSequence
	out.NumTransfers--

	return out, true
}

func (a TripAlight) resolvePeriod(t int64) (*calendar.ServicePeriod, bool) {
	period, ok := a.Calendar.PeriodOfOrBefore(t)
	if !ok {
		return nil, false
	}
	if period.HasService(a.ServiceID) {
		return period, true
	}
	return a.Calendar.PrevWithService(period, a.ServiceID)
}

// WalkBack is the principal operation: it finds the latest trip that
// deposits a traveler at this stop no later than state.Time, rolling
// backward through service days until one is found or the calendar is
// exhausted (spec §4.9).
func (a TripAlight) WalkBack(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	if len(a.Arrivals) == 0 {
		return travelstate.State{}, false
	}

	period, ok := a.resolvePeriod(state.Time)
	if !ok {
		return travelstate.State{}, false
	}

	utcOffset, err := a.Timezone.UTCOffset(state.Time)
	if err != nil {
		return travelstate.State{}, false
	}
	nowTOD := calendar.NormalizeTime(period, utcOffset, state.Time)

	// Largest i with Arrivals[i] <= nowTOD.
	i := sort.Search(len(a.Arrivals), func(i int) bool { return a.Arrivals[i] > nowTOD }) - 1
	for i < 0 {
		prev, ok := period.Prev()
		if !ok {
			return travelstate.State{}, false
		}
		period, ok = a.Calendar.PrevWithService(prev, a.ServiceID)
		if !ok {
			return travelstate.State{}, false
		}
		i = len(a.Arrivals) - 1
	}

	tArrive := calendar.DatumMidnight(period, utcOffset) + a.Arrivals[i]

	out := state
	out.Time = tArrive
	out.Weight += (state.Time - tArrive) + opts.TransferPenalty
	out.NumTransfers++
	out.TripID = a.TripIDs[i]
	out.StopSequence = a.StopSequences[i]
	out.ServicePeriod = period

	return out, true
}
