// Package tzdata provides a piecewise-constant mapping from absolute
// wall-clock seconds to UTC offset.
//
// A Timezone is an ordered, non-overlapping sequence of TimezonePeriod
// values. Unlike the IANA tzdata this package is named after, callers
// build a Timezone explicitly from known periods (e.g. one GTFS
// feed's DST transitions) rather than looking anything up by name —
// there is no on-disk format or database involved (see spec
// non-goals: no persistence).
//
// Lookups outside the covered range fail by returning ErrNoPeriod;
// lookups inside an overlapping construction fail earlier, at
// NewTimezone time, with ErrOverlappingPeriod.
package tzdata
