package calendar

import "errors"

// Sentinel errors of the calendar package. Branch on these with
// errors.Is. AddPeriod returns ErrUnsortedPeriod; the lookups report
// absence with a bool and do not return ErrNoPeriod or
// ErrServiceNotActive, which name those outcomes for callers.
var (
	// ErrUnsortedPeriod indicates AddPeriod was called with a period
	// whose BeginTime does not strictly follow the calendar's last
	// period, or whose BeginTime >= EndTime.
	ErrUnsortedPeriod = errors.New("calendar: periods must be strictly increasing and non-degenerate")

	// ErrNoPeriod indicates no period satisfies the requested query
	// (an empty calendar, or a query past every period's bound).
	ErrNoPeriod = errors.New("calendar: no matching service period")

	// ErrServiceNotActive indicates the located period does not carry
	// the requested ServiceID.
	ErrServiceNotActive = errors.New("calendar: service id not active in period")
)

// NoServiceID is the sentinel "no service" value for ServiceID, per
// spec §6.3.
const NoServiceID ServiceID = -1
