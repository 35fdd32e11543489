package travelstate

// HeadwayWaitPolicy selects the formula HeadwayBoard/HeadwayAlight use
// when the query time falls inside the headway's service window
// (bounds included) (spec §4.10 step 3, Design Note 9.3 — the source leaves this
// ambiguous, so SPEC_FULL turns it into an explicit, documented knob).
type HeadwayWaitPolicy int

const (
	// HeadwayBoardInstantly boards at now_tod with no added wait. This
	// is the default: it matches the source's literal reading of
	// headwayWalk, which advances time to now_tod and stops.
	HeadwayBoardInstantly HeadwayWaitPolicy = iota

	// HeadwayExpectedWait adds headway_secs/2 to the boarding time,
	// modeling the average wait for a rider arriving at a random
	// instant within the window.
	HeadwayExpectedWait

	// HeadwayWorstCaseWait adds the full headway_secs, modeling the
	// pessimistic wait for a rider who just missed a departure.
	HeadwayWorstCaseWait
)

// WalkOptions are the immutable traversal parameters every payload's
// Walk/WalkBack consults (spec §3.2). Build one with NewWalkOptions;
// the zero value is not a valid WalkOptions (WalkingSpeed would be 0,
// producing a divide-by-zero in Street/Egress).
type WalkOptions struct {
	// TransferPenalty is added to Weight each time NumTransfers
	// increments (TripBoard/HeadwayBoard boarding).
	TransferPenalty int64

	// WalkingSpeed is meters/second used to convert street length to
	// time. Must be > 0.
	WalkingSpeed float64

	// WalkingReluctance is the weight-per-second multiplier applied
	// while walking.
	WalkingReluctance float64

	// MaxWalk is the meters above which a Street edge yields no
	// successor (spec §4.2 step 1).
	MaxWalk float64

	// WalkingOverageThreshold is the DistWalked, in meters, above
	// which WalkingOverage starts applying a surcharge.
	WalkingOverageThreshold float64

	// WalkingOverage is a weight-per-meter surcharge for walking past
	// WalkingOverageThreshold, discouraging (without forbidding) very
	// long walks while MaxWalk still forbids walks beyond its own,
	// harder limit.
	WalkingOverage float64

	// TurnPenalty is added when a Street edge's Way differs from the
	// predecessor Street edge's Way (spec §4.2 step 3).
	TurnPenalty int64

	// UphillSlowness is the seconds added per meter of elevation
	// gained (Street.Rise) while walking forward.
	UphillSlowness float64

	// DownhillFastness is the seconds subtracted per meter of
	// elevation lost (Street.Fall) while walking forward, clamped so
	// the adjustment never drives the time contribution negative.
	DownhillFastness float64

	// HillReluctance scales the weight contribution of Street.Slog
	// (spec §4.2 step 3: weight *= 1 + slog*HillReluctance).
	HillReluctance float64

	// HeadwayWaitPolicy selects HeadwayBoard/HeadwayAlight's
	// mid-window wait formula (Design Note 9.3).
	HeadwayWaitPolicy HeadwayWaitPolicy
}

// Option configures a WalkOptions under construction.
type Option func(*WalkOptions)

// DefaultWalkOptions returns sensible defaults: a brisk walking pace,
// moderate reluctance, no turn or transfer penalty, no hill shaping,
// board-instantly headway semantics, a MaxWalk of 4 km, and no walking
// overage surcharge.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		TransferPenalty:         0,
		WalkingSpeed:            1.33, // ~4.8 km/h
		WalkingReluctance:       2.0,
		MaxWalk:                 4_000,
		WalkingOverageThreshold: 2_500,
		WalkingOverage:          0,
		TurnPenalty:             0,
		UphillSlowness:          0,
		DownhillFastness:        0,
		HillReluctance:          0,
		HeadwayWaitPolicy:       HeadwayBoardInstantly,
	}
}

// NewWalkOptions builds a WalkOptions from DefaultWalkOptions(),
// applying opts left to right. Option constructors below panic on
// out-of-range arguments — invalid traversal tuning is a programmer
// error, not a runtime condition a search should recover from,
// matching dijkstra.WithMaxDistance's panic-in-constructor convention.
func NewWalkOptions(opts ...Option) *WalkOptions {
	wo := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&wo)
	}
	return &wo
}

// WithTransferPenalty sets TransferPenalty.
func WithTransferPenalty(penalty int64) Option {
	return func(wo *WalkOptions) { wo.TransferPenalty = penalty }
}

// WithWalkingSpeed sets WalkingSpeed. Panics if speed <= 0.
func WithWalkingSpeed(speed float64) Option {
	if speed <= 0 {
		panic("travelstate: walking speed must be positive")
	}
	return func(wo *WalkOptions) { wo.WalkingSpeed = speed }
}

// WithWalkingReluctance sets WalkingReluctance.
func WithWalkingReluctance(reluctance float64) Option {
	return func(wo *WalkOptions) { wo.WalkingReluctance = reluctance }
}

// WithMaxWalk sets MaxWalk. Panics if maxWalk < 0.
func WithMaxWalk(maxWalk float64) Option {
	if maxWalk < 0 {
		panic("travelstate: max walk must be non-negative")
	}
	return func(wo *WalkOptions) { wo.MaxWalk = maxWalk }
}

// WithWalkingOverage sets the overage threshold and per-meter
// surcharge applied beyond it.
func WithWalkingOverage(threshold, perMeter float64) Option {
	return func(wo *WalkOptions) {
		wo.WalkingOverageThreshold = threshold
		wo.WalkingOverage = perMeter
	}
}

// WithTurnPenalty sets TurnPenalty.
func WithTurnPenalty(penalty int64) Option {
	return func(wo *WalkOptions) { wo.TurnPenalty = penalty }
}

// WithHillParams sets UphillSlowness, DownhillFastness and
// HillReluctance together, since they only make sense tuned jointly.
func WithHillParams(uphillSlowness, downhillFastness, hillReluctance float64) Option {
	return func(wo *WalkOptions) {
		wo.UphillSlowness = uphillSlowness
		wo.DownhillFastness = downhillFastness
		wo.HillReluctance = hillReluctance
	}
}

// WithHeadwayWaitPolicy sets HeadwayWaitPolicy.
func WithHeadwayWaitPolicy(policy HeadwayWaitPolicy) Option {
	return func(wo *WalkOptions) { wo.HeadwayWaitPolicy = policy }
}
