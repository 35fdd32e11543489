package payload

import (
	"github.com/katalvlaran/viaduct/calendar"
	"github.com/katalvlaran/viaduct/travelstate"
	"github.com/katalvlaran/viaduct/tzdata"
)

// HeadwayBoard is frequency-based boarding: a trip runs every
// HeadwaySecs seconds between StartTime and EndTime on days carrying
// ServiceID, with no explicit per-departure schedule (spec §4.10).
type HeadwayBoard struct {
	Calendar  *calendar.ServiceCalendar
	Timezone  *tzdata.Timezone
	ServiceID calendar.ServiceID

	TripID      string
	StartTime   int64 // seconds since local midnight
	EndTime     int64
	HeadwaySecs int64
}

var _ EdgePayload = HeadwayBoard{}

// Kind returns KindHeadwayBoard.
func (h HeadwayBoard) Kind() Kind { return KindHeadwayBoard }

func (h HeadwayBoard) resolvePeriod(t int64) (*calendar.ServicePeriod, bool) {
	period, ok := h.Calendar.PeriodOfOrAfter(t)
	if !ok {
		return nil, false
	}
	if period.HasService(h.ServiceID) {
		return period, true
	}
	return h.Calendar.NextWithService(period, h.ServiceID)
}

// expectedWait returns the additional seconds a mid-window boarding
// waits, per opts.HeadwayWaitPolicy (Design Note 9.3: the source leaves
// this ambiguous, so the policy is an explicit WalkOptions field).
func (h HeadwayBoard) expectedWait(opts *travelstate.WalkOptions) int64 {
	switch opts.HeadwayWaitPolicy {
	case travelstate.HeadwayExpectedWait:
		return h.HeadwaySecs / 2
	case travelstate.HeadwayWorstCaseWait:
		return h.HeadwaySecs
	default:
		return 0
	}
}

// Walk resolves the service period, then boards at StartTime (before
// the window), at now_tod plus the configured wait (inside the
// window), or rolls to the next service day's StartTime (after the
// window) — spec §4.10 steps 1-5.
func (h HeadwayBoard) Walk(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	period, ok := h.resolvePeriod(state.Time)
	if !ok {
		return travelstate.State{}, false
	}

	utcOffset, err := h.Timezone.UTCOffset(state.Time)
	if err != nil {
		return travelstate.State{}, false
	}
	nowTOD := calendar.NormalizeTime(period, utcOffset, state.Time)

	var boardTOD int64
	switch {
	case nowTOD < h.StartTime:
		boardTOD = h.StartTime
	case nowTOD <= h.EndTime:
		boardTOD = nowTOD + h.expectedWait(opts)
	default:
		next, ok := period.Next()
		if !ok {
			return travelstate.State{}, false
		}
		period, ok = h.Calendar.NextWithService(next, h.ServiceID)
		if !ok {
			return travelstate.State{}, false
		}
		boardTOD = h.StartTime
	}

	tBoard := calendar.DatumMidnight(period, utcOffset) + boardTOD

	out := state
	out.Time = tBoard
	out.Weight += (tBoard - state.Time) + opts.TransferPenalty
	out.NumTransfers++
	out.TripID = h.TripID
	out.StopSequence = travelstate.NoStopSequence
	out.ServicePeriod = period

	return out, true
}

// WalkBack is disboarding without cost, mirroring TripBoard.
func (h HeadwayBoard) WalkBack(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	out := state
	out.TripID = ""
	out.StopSequence = travelstate.NoStopSequence
	out.NumTransfers--

	return out, true
}
