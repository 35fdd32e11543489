package payload

import "github.com/katalvlaran/viaduct/travelstate"

// Egress represents a final walkable link out of the street network into
// an unrestricted destination point, such as a parking spot or a trip's
// final doorstep (spec §4.3).
//
// Egress performs the same time computation as Street but spends no
// max_walk budget and applies no hill or turn penalty: it is meant for
// the one mandatory "last mile" leg of a trip, which should never be
// rejected for exceeding a walking budget meant to bound discretionary
// street wandering.
type Egress struct {
	Name   string
	Length float64 // meters
}

var _ EdgePayload = Egress{}

// Kind returns KindEgress.
func (e Egress) Kind() Kind { return KindEgress }

// Walk computes elapsed time as e.Length / opts.WalkingSpeed and weight
// as timeCost * opts.WalkingReluctance, with no budget check, no
// elevation term, and no turn penalty (spec §4.3).
func (e Egress) Walk(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	return e.walk(state, opts, false)
}

// WalkBack mirrors Walk; Egress has no rise/fall to swap, so walking
// backward differs from Walk only in the sign of the time and
// DistWalked deltas.
func (e Egress) WalkBack(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	return e.walk(state, opts, true)
}

func (e Egress) walk(state travelstate.State, opts *travelstate.WalkOptions, backward bool) (travelstate.State, bool) {
	timeCost := e.Length / opts.WalkingSpeed
	weight := int64(timeCost * opts.WalkingReluctance)

	out := state
	out.Weight += weight

	if backward {
		// See Street.walk: state is the arrival side, so the pre-edge
		// dist_walked is state.DistWalked - e.Length (spec §8.1 round
		// trip).
		out.DistWalked -= e.Length
		out.Time -= int64(timeCost)
	} else {
		out.DistWalked += e.Length
		out.Time += int64(timeCost)
	}

	return out, true
}
