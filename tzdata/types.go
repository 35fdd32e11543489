package tzdata

import "sort"

// SecondsPerDay is the number of seconds in a nominal local day, used
// throughout this module to fold absolute seconds into a time-of-day.
const SecondsPerDay = 86400

// TimezonePeriod covers [BeginTime, EndTime] (inclusive) with a constant
// UTCOffset, expressed in seconds east of UTC (negative for west).
type TimezonePeriod struct {
	BeginTime int64
	EndTime   int64
	UTCOffset int64
}

// timeSinceMidnight returns p's notion of local time-of-day for t,
// i.e. seconds elapsed since the local midnight implied by UTCOffset.
// t is not required to fall inside [BeginTime, EndTime]; callers that
// care should check that separately (PeriodOf already does).
func (p TimezonePeriod) timeSinceMidnight(t int64) int64 {
	local := t + p.UTCOffset
	tod := local % SecondsPerDay
	if tod < 0 {
		tod += SecondsPerDay
	}
	return tod
}

// Timezone is an ordered, non-overlapping sequence of TimezonePeriod.
// It is immutable after construction: build it once via NewTimezone and
// share the pointer across every payload and search that needs it, per
// the module's read-only-after-construction concurrency policy.
type Timezone struct {
	periods []TimezonePeriod
}

// NewTimezone builds a Timezone from the given periods, in any order:
// it sorts a copy ascending by BeginTime, then rejects degenerate
// periods and overlapping neighbors.
//
// Complexity: O(n log n) to sort and validate; O(n) space for the
// retained slice.
func NewTimezone(periods ...TimezonePeriod) (*Timezone, error) {
	if len(periods) == 0 {
		return nil, ErrEmptyPeriods
	}

	sorted := append([]TimezonePeriod(nil), periods...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].BeginTime < sorted[j].BeginTime })

	for i, p := range sorted {
		if p.BeginTime >= p.EndTime {
			return nil, ErrUnsortedPeriod
		}
		if i > 0 && sorted[i-1].EndTime >= p.BeginTime {
			return nil, ErrOverlappingPeriod
		}
	}

	return &Timezone{periods: sorted}, nil
}

// PeriodOf returns the period covering t, or false if none does.
//
// Complexity: O(log n).
func (tz *Timezone) PeriodOf(t int64) (TimezonePeriod, bool) {
	periods := tz.periods
	i := sort.Search(len(periods), func(i int) bool { return periods[i].EndTime >= t })
	if i == len(periods) || periods[i].BeginTime > t {
		return TimezonePeriod{}, false
	}
	return periods[i], true
}

// UTCOffset returns the UTC offset in effect at t, or ErrNoPeriod if t
// falls outside every period.
func (tz *Timezone) UTCOffset(t int64) (int64, error) {
	p, ok := tz.PeriodOf(t)
	if !ok {
		return 0, ErrNoPeriod
	}
	return p.UTCOffset, nil
}

// TimeSinceMidnight returns the seconds elapsed since the local midnight
// of the period covering t, or ErrNoPeriod if no period covers t.
//
// This is spec §3.3's tzTimeSinceMidnight / tzpTimeSinceMidnight,
// satisfying the timezone idempotence law of spec §8.1:
// TimeSinceMidnight(t) == t - DatumMidnight(PeriodOf(t), UTCOffset(t)),
// modulo 86400.
func (tz *Timezone) TimeSinceMidnight(t int64) (int64, error) {
	p, ok := tz.PeriodOf(t)
	if !ok {
		return 0, ErrNoPeriod
	}
	return p.timeSinceMidnight(t), nil
}
