// Package payload implements the EdgePayload family: the tagged union
// of edge kinds a transportation graph's edges carry, and the two
// operations — Walk and WalkBack — every kind implements to transform a
// traveler's travelstate.State (spec §4).
//
// Street, Egress, Link, Wait, ElapseTime, Crossing, TripBoard,
// TripAlight, HeadwayBoard, HeadwayAlight, Headway, Combination and
// Custom each implement EdgePayload. Walk/WalkBack are pure functions
// of their three inputs (payload, state, options): calling either twice
// with identical arguments returns identical results, and neither the
// payload nor the input State is mutated (spec §4.1, §5). A failed or
// undefined traversal is reported by returning (travelstate.State{}, false),
// matching spec §7 ("none of these is fatal: the driver interprets
// absent as 'this successor does not exist' and continues the
// search"). This package's sentinel errors classify the spec §7 error
// kinds for documentation and for the unit tests that pin down which
// kind a given scenario triggers; they do not flow through Walk/WalkBack
// itself.
//
// Dispatch is ordinary Go interface dispatch, not a hand-rolled switch
// over a discriminator: EdgePayload.Kind() exposes the discriminator
// only for external inspectors that need it (spec §6.2), never for
// internal control flow (Design Note 9.1).
package payload
