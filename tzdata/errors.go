package tzdata

import "errors"

// Sentinel errors returned by the tzdata package.
//
// Callers should branch on these with errors.Is; they are never
// wrapped with formatted context at the definition site (matching
// the rest of this module's error policy).
var (
	// ErrEmptyPeriods indicates NewTimezone was called with no periods.
	ErrEmptyPeriods = errors.New("tzdata: at least one period is required")

	// ErrUnsortedPeriod indicates BeginTime >= EndTime for some period.
	// NewTimezone sorts its input itself, so input order alone never
	// triggers it.
	ErrUnsortedPeriod = errors.New("tzdata: periods must be sorted and non-degenerate")

	// ErrOverlappingPeriod indicates two adjacent periods overlap in time.
	ErrOverlappingPeriod = errors.New("tzdata: periods must not overlap")

	// ErrNoPeriod indicates a queried time falls outside every period
	// covered by the Timezone.
	ErrNoPeriod = errors.New("tzdata: no period covers the given time")
)
