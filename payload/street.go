package payload

import "github.com/katalvlaran/viaduct/travelstate"

// Street represents a walkable road segment (spec §4.2).
type Street struct {
	Name   string
	Length float64 // meters
	Rise   float64 // meters of elevation gained along forward traversal
	Fall   float64 // meters of elevation lost along forward traversal
	Slog   float64 // per-edge difficulty multiplier
	Way    int64   // way id, used for turn-penalty detection
}

var _ EdgePayload = Street{}

// Kind returns KindStreet.
func (s Street) Kind() Kind { return KindStreet }

// Walk computes the elapsed time and weight of walking s forward, per
// spec §4.2:
//  1. Fails if state.DistWalked + s.Length exceeds opts.MaxWalk.
//  2. Base time is s.Length / opts.WalkingSpeed, adjusted by elevation:
//     +s.Rise*opts.UphillSlowness, -s.Fall*opts.DownhillFastness,
//     clamped so the elevation term never drives time below the flat
//     base time.
//  3. Weight is timeCost*reluctance*(1+slog*hillReluctance), plus a
//     per-meter surcharge on every meter by which the post-walk
//     DistWalked exceeds opts.WalkingOverageThreshold (meters walked
//     on earlier edges included), plus opts.TurnPenalty if the
//     predecessor was a Street with a different Way.
func (s Street) Walk(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	return s.walk(state, opts, false)
}

// WalkBack mirrors Walk with Rise and Fall swapped (spec §4.2,
// "Walk-back is symmetric with rise and fall swapped"). It applies no
// turn penalty and leaves PrevStreetWay/HasPrevStreetWay unchanged.
func (s Street) WalkBack(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	return s.walk(state, opts, true)
}

func (s Street) walk(state travelstate.State, opts *travelstate.WalkOptions, backward bool) (travelstate.State, bool) {
	// distBefore is dist_walked as of the end of the trip nearer in time
	// to the search origin: the input state itself when walking forward,
	// or the input state's dist_walked minus this street's length when
	// walking backward (state is the arrival side, already including
	// this street, so the pre-edge value is state.DistWalked - s.Length —
	// this is what makes WalkBack(Walk(s)) restore dist_walked exactly,
	// spec §8.1's round-trip-preservation law).
	distBefore := state.DistWalked
	if backward {
		distBefore -= s.Length
	}
	if distBefore+s.Length > opts.MaxWalk {
		return travelstate.State{}, false
	}

	rise, fall := s.Rise, s.Fall
	if backward {
		rise, fall = fall, rise
	}

	baseTime := s.Length / opts.WalkingSpeed
	timeCost := baseTime + rise*opts.UphillSlowness - fall*opts.DownhillFastness
	if timeCost < baseTime {
		timeCost = baseTime
	}

	weight := int64(timeCost * opts.WalkingReluctance * (1 + s.Slog*opts.HillReluctance))
	if over := distBefore + s.Length - opts.WalkingOverageThreshold; over > 0 {
		weight += int64(over * opts.WalkingOverage)
	}
	if !backward && state.HasPrevStreetWay && state.PrevStreetWay != s.Way {
		weight += opts.TurnPenalty
	}

	out := state
	out.Weight += weight

	if backward {
		out.DistWalked = distBefore
		out.Time -= int64(timeCost)
	} else {
		out.DistWalked += s.Length
		out.PrevStreetWay = s.Way
		out.HasPrevStreetWay = true
		out.Time += int64(timeCost)
	}

	return out, true
}
