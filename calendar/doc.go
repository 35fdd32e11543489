// Package calendar provides a piecewise-constant mapping from absolute
// wall-clock seconds to the set of transit service identifiers active
// that day.
//
// A ServiceCalendar is an ordered, strictly-increasing, non-overlapping
// sequence of ServicePeriod values (spec §3.3). Unlike tzdata.Timezone,
// calendar lookups come in two flavors — PeriodOfOrAfter and
// PeriodOfOrBefore — because the TripBoard/TripAlight/HeadwayBoard/
// HeadwayAlight search in package payload needs to walk forward or
// backward to the next period that actually carries a given ServiceID
// (spec §4.8 step 1).
package calendar
