package payload

import (
	"github.com/katalvlaran/viaduct/calendar"
	"github.com/katalvlaran/viaduct/travelstate"
	"github.com/katalvlaran/viaduct/tzdata"
)

// HeadwayAlight is the reverse-time analog of HeadwayBoard (spec
// §4.11): alighting from a frequency-based service, principally used by
// a reverse (depart-before) search that needs "what is the latest
// frequency-service trip that could have dropped me here by this time".
type HeadwayAlight struct {
	Calendar  *calendar.ServiceCalendar
	Timezone  *tzdata.Timezone
	ServiceID calendar.ServiceID

	TripID      string
	StartTime   int64
	EndTime     int64
	HeadwaySecs int64
}

var _ EdgePayload = HeadwayAlight{}

// Kind returns KindHeadwayAlight.
func (h HeadwayAlight) Kind() Kind { return KindHeadwayAlight }

// Walk is a no-cost trip-clear, mirroring HeadwayBoard's WalkBack.
func (h HeadwayAlight) Walk(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	out := state
	out.TripID = ""
	out.StopSequence = travelstate.NoStopSequence
	out.NumTransfers--

	return out, true
}

func (h HeadwayAlight) resolvePeriod(t int64) (*calendar.ServicePeriod, bool) {
	period, ok := h.Calendar.PeriodOfOrBefore(t)
	if !ok {
		return nil, false
	}
	if period.HasService(h.ServiceID) {
		return period, true
	}
	return h.Calendar.PrevWithService(period, h.ServiceID)
}

func (h HeadwayAlight) expectedWait(opts *travelstate.WalkOptions) int64 {
	switch opts.HeadwayWaitPolicy {
	case travelstate.HeadwayExpectedWait:
		return h.HeadwaySecs / 2
	case travelstate.HeadwayWorstCaseWait:
		return h.HeadwaySecs
	default:
		return 0
	}
}

// WalkBack is the principal operation, symmetric with HeadwayBoard.Walk:
// it alights at EndTime if state.Time's time-of-day is past the window,
// at now_tod minus the configured wait if inside it, or, if before it,
// at EndTime of the previous service day carrying ServiceID.
func (h HeadwayAlight) WalkBack(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	period, ok := h.resolvePeriod(state.Time)
	if !ok {
		return travelstate.State{}, false
	}

	utcOffset, err := h.Timezone.UTCOffset(state.Time)
	if err != nil {
		return travelstate.State{}, false
	}
	nowTOD := calendar.NormalizeTime(period, utcOffset, state.Time)

	var alightTOD int64
	switch {
	case nowTOD > h.EndTime:
		alightTOD = h.EndTime
	case nowTOD >= h.StartTime:
		alightTOD = nowTOD - h.expectedWait(opts)
	default:
		prev, ok := period.Prev()
		if !ok {
			return travelstate.State{}, false
		}
		period, ok = h.Calendar.PrevWithService(prev, h.ServiceID)
		if !ok {
			return travelstate.State{}, false
		}
		alightTOD = h.EndTime
	}

	tAlight := calendar.DatumMidnight(period, utcOffset) + alightTOD

	out := state
	out.Time = tAlight
	out.Weight += (state.Time - tAlight) + opts.TransferPenalty
	out.NumTransfers++
	out.TripID = h.TripID
	out.StopSequence = travelstate.NoStopSequence
	out.ServicePeriod = period

	return out, true
}
