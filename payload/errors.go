package payload

import "errors"

// Sentinel errors, one per spec §7 error kind. Walk/WalkBack never
// return these directly (they signal failure via the boolean ok return,
// per spec §7's "none of these is fatal... returning absent"); they
// name, for documentation and for this package's own tests, which of
// the six spec §7 failure modes a given ok=false result corresponds to.
var (
	// ErrServiceUnavailable: no calendar period covers state.Time
	// carrying the payload's ServiceID.
	ErrServiceUnavailable = errors.New("payload: service unavailable at this time")

	// ErrTimezoneUnavailable: no timezone period covers state.Time.
	ErrTimezoneUnavailable = errors.New("payload: timezone unavailable at this time")

	// ErrNoDeparture: a TripBoard/HeadwayBoard search exhausted its
	// forward horizon without finding a departure.
	ErrNoDeparture = errors.New("payload: no reachable departure")

	// ErrNoArrival: a TripAlight/HeadwayAlight search exhausted its
	// backward horizon without finding an arrival.
	ErrNoArrival = errors.New("payload: no reachable arrival")

	// ErrWalkBudgetExhausted: dist_walked + length > max_walk.
	ErrWalkBudgetExhausted = errors.New("payload: walking budget exhausted")

	// ErrTripContextMissing: Crossing invoked with a state.TripID the
	// payload has no crossing time for.
	ErrTripContextMissing = errors.New("payload: trip context missing")

	// ErrCustomFailure: a Custom payload's dispatch table returned
	// absent.
	ErrCustomFailure = errors.New("payload: custom payload walk failed")
)
