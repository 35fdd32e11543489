package calendar

import "sort"

// SecondsPerDay is the number of seconds in a nominal local day.
const SecondsPerDay = 86400

// ServiceID identifies a subset of trips that run on certain days
// (e.g. "weekday", "weekend", "holiday"). NoServiceID (-1) means "no
// service" per spec §6.3.
type ServiceID int

// ServicePeriod covers [BeginTime, EndTime] (inclusive) with the set of
// ServiceIDs active on that period — typically one calendar day of
// local time projected onto absolute seconds.
//
// All lookups in this package hand back a *ServicePeriod pointing into
// the owning ServiceCalendar's backing array, never a copy: spec §3.1
// wants State.ServicePeriod to be "a cached pointer/index", and a
// stable pointer is also what lets travelstate.State stay comparable
// with ==, which the Combination cache (spec §9.6) relies on.
type ServicePeriod struct {
	BeginTime  int64
	EndTime    int64
	ServiceIDs []ServiceID

	index int // position within the owning ServiceCalendar, for O(1) Next/Prev
	cal   *ServiceCalendar
}

// HasService reports whether id is active during this period.
//
// Complexity: O(len(ServiceIDs)); calendars in this module carry few
// service ids per period (one GTFS feed's calendar.txt rows), so a
// linear scan beats allocating a set per period.
func (p *ServicePeriod) HasService(id ServiceID) bool {
	for _, sid := range p.ServiceIDs {
		if sid == id {
			return true
		}
	}
	return false
}

// Next returns the period immediately following p in its calendar, or
// false if p is the last period or was not obtained from a calendar.
func (p *ServicePeriod) Next() (*ServicePeriod, bool) {
	if p.cal == nil || p.index+1 >= len(p.cal.periods) {
		return nil, false
	}
	return &p.cal.periods[p.index+1], true
}

// Prev returns the period immediately preceding p in its calendar, or
// false if p is the first period or was not obtained from a calendar.
func (p *ServicePeriod) Prev() (*ServicePeriod, bool) {
	if p.cal == nil || p.index == 0 {
		return nil, false
	}
	return &p.cal.periods[p.index-1], true
}

// ServiceCalendar is an ordered, strictly-increasing, non-overlapping
// sequence of ServicePeriod values, replacing the doubly-linked list of
// the original source (Design Note 9.2) with an index-navigable slice.
//
// Immutable once every AddPeriod call preceding the first search has
// returned; per the module's concurrency policy, mutation must
// complete before any search begins, after which ServiceCalendar is
// safe to share, read-only, across concurrent searches, and every
// *ServicePeriod it has handed out remains valid for the calendar's
// lifetime.
type ServiceCalendar struct {
	periods []ServicePeriod
}

// NewServiceCalendar returns an empty calendar. Populate it with
// AddPeriod before handing it to any payload constructor.
func NewServiceCalendar() *ServiceCalendar {
	return &ServiceCalendar{}
}

// AddPeriod appends a new period to the calendar. period.BeginTime must
// be strictly greater than the previous period's EndTime (or the
// calendar must be empty), and BeginTime must be < EndTime.
//
// Complexity: O(1) amortized.
func (c *ServiceCalendar) AddPeriod(period ServicePeriod) error {
	if period.BeginTime >= period.EndTime {
		return ErrUnsortedPeriod
	}
	if n := len(c.periods); n > 0 && c.periods[n-1].EndTime >= period.BeginTime {
		return ErrUnsortedPeriod
	}

	period.index = len(c.periods)
	period.cal = c
	c.periods = append(c.periods, period)

	return nil
}

// PeriodOfOrAfter returns the first period whose EndTime >= t, or false
// if every period ends before t.
//
// Complexity: O(log n).
func (c *ServiceCalendar) PeriodOfOrAfter(t int64) (*ServicePeriod, bool) {
	periods := c.periods
	i := sort.Search(len(periods), func(i int) bool { return periods[i].EndTime >= t })
	if i == len(periods) {
		return nil, false
	}
	return &c.periods[i], true
}

// PeriodOfOrBefore returns the last period whose BeginTime <= t, or
// false if every period begins after t.
//
// Complexity: O(log n).
func (c *ServiceCalendar) PeriodOfOrBefore(t int64) (*ServicePeriod, bool) {
	periods := c.periods
	i := sort.Search(len(periods), func(i int) bool { return periods[i].BeginTime > t })
	if i == 0 {
		return nil, false
	}
	return &c.periods[i-1], true
}

// NextWithService returns the nearest period at or after start (start
// itself included) that carries id, scanning forward period by period.
// Used by the TripBoard/HeadwayBoard "roll to the next service day"
// step (spec §4.8 step 4).
func (c *ServiceCalendar) NextWithService(start *ServicePeriod, id ServiceID) (*ServicePeriod, bool) {
	p := start
	for p != nil {
		if p.HasService(id) {
			return p, true
		}
		var ok bool
		p, ok = p.Next()
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// PrevWithService mirrors NextWithService, scanning backward. Used by
// the backward searches of TripAlight, HeadwayAlight and Headway.
func (c *ServiceCalendar) PrevWithService(start *ServicePeriod, id ServiceID) (*ServicePeriod, bool) {
	p := start
	for p != nil {
		if p.HasService(id) {
			return p, true
		}
		var ok bool
		p, ok = p.Prev()
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// DatumMidnight returns period.BeginTime rounded down to the local
// midnight implied by utcOffset (spec §3.3).
func DatumMidnight(period *ServicePeriod, utcOffset int64) int64 {
	local := period.BeginTime + utcOffset
	localMidnight := floorDiv(local, SecondsPerDay) * SecondsPerDay
	return localMidnight - utcOffset
}

// NormalizeTime returns seconds since period's datum midnight — "time
// of day", with values >= 86400 expressing post-midnight overage
// (spec §3.3, §9.4).
func NormalizeTime(period *ServicePeriod, utcOffset int64, t int64) int64 {
	return t - DatumMidnight(period, utcOffset)
}

// floorDiv is integer division that rounds toward negative infinity,
// unlike Go's truncating "/". Needed because DatumMidnight must round
// down even when local is negative (a period beginning before the
// epoch under a positive UTC offset).
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
