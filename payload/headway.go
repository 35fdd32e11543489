package payload

import (
	"github.com/katalvlaran/viaduct/calendar"
	"github.com/katalvlaran/viaduct/travelstate"
	"github.com/katalvlaran/viaduct/tzdata"
)

// Headway is a non-boarding frequency primitive: a fixed trip that is
// available, on days carrying ServiceID, somewhere in [BeginTime,
// EndTime] — either a wait-only boundary (Transit == false, like Wait)
// or a timed movement (Transit == true, like ElapseTime) — without
// HeadwayBoard/HeadwayAlight's transfer bookkeeping or next-day roll
// (SPEC supplement §5.3).
type Headway struct {
	Calendar  *calendar.ServiceCalendar
	Timezone  *tzdata.Timezone
	ServiceID calendar.ServiceID

	BeginTime  int64
	EndTime    int64
	WaitPeriod int64
	Transit    bool
	TripID     string
}

var _ EdgePayload = Headway{}

// Kind returns KindHeadway.
func (h Headway) Kind() Kind { return KindHeadway }

func (h Headway) resolvePeriodForward(t int64) (*calendar.ServicePeriod, bool) {
	period, ok := h.Calendar.PeriodOfOrAfter(t)
	if !ok {
		return nil, false
	}
	if period.HasService(h.ServiceID) {
		return period, true
	}
	return h.Calendar.NextWithService(period, h.ServiceID)
}

func (h Headway) resolvePeriodBackward(t int64) (*calendar.ServicePeriod, bool) {
	period, ok := h.Calendar.PeriodOfOrBefore(t)
	if !ok {
		return nil, false
	}
	if period.HasService(h.ServiceID) {
		return period, true
	}
	return h.Calendar.PrevWithService(period, h.ServiceID)
}

// Walk fails outside [BeginTime, EndTime] with no next-day roll
// (unlike HeadwayBoard); inside the window it advances by WaitPeriod
// when Transit, or leaves time unchanged otherwise.
func (h Headway) Walk(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	period, ok := h.resolvePeriodForward(state.Time)
	if !ok {
		return travelstate.State{}, false
	}

	utcOffset, err := h.Timezone.UTCOffset(state.Time)
	if err != nil {
		return travelstate.State{}, false
	}
	nowTOD := calendar.NormalizeTime(period, utcOffset, state.Time)
	if nowTOD < h.BeginTime || nowTOD > h.EndTime {
		return travelstate.State{}, false
	}

	out := state
	out.TripID = h.TripID
	out.ServicePeriod = period
	if h.Transit {
		out.Time += h.WaitPeriod
		out.Weight += h.WaitPeriod
	}

	return out, true
}

// WalkBack mirrors Walk: fails outside the window, and subtracts
// WaitPeriod from time when Transit.
func (h Headway) WalkBack(state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
	period, ok := h.resolvePeriodBackward(state.Time)
	if !ok {
		return travelstate.State{}, false
	}

	utcOffset, err := h.Timezone.UTCOffset(state.Time)
	if err != nil {
		return travelstate.State{}, false
	}
	nowTOD := calendar.NormalizeTime(period, utcOffset, state.Time)
	if nowTOD < h.BeginTime || nowTOD > h.EndTime {
		return travelstate.State{}, false
	}

	out := state
	out.TripID = h.TripID
	out.ServicePeriod = period
	if h.Transit {
		out.Time -= h.WaitPeriod
		out.Weight += h.WaitPeriod
	}

	return out, true
}
