package payload_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viaduct/payload"
	"github.com/katalvlaran/viaduct/travelstate"
)

func TestTripAlight_WalkBackChoosesLatestArrivalAtOrBeforeNow(t *testing.T) {
	const datumMidnight = 18000
	a := payload.TripAlight{
		Calendar:      newOneDayCalendar(t),
		Timezone:      newTestTimezone(t),
		ServiceID:     1,
		TripIDs:       []string{"A", "B", "C"},
		Arrivals:      []int64{28800, 32400, 36000},
		StopSequences: []int{1, 1, 1},
		Overage:       -1,
	}
	opts := travelstate.NewWalkOptions(travelstate.WithTransferPenalty(50))

	in := travelstate.State{Time: datumMidnight + 34000}
	out, ok := a.WalkBack(in, opts)
	require.True(t, ok)
	require.Equal(t, "B", out.TripID)
	require.Equal(t, int64(datumMidnight+32400), out.Time)
	require.Equal(t, (in.Time-out.Time)+50, out.Weight)
}

func TestTripAlight_WalkBackRollsToPreviousServiceDay(t *testing.T) {
	const datumMidnight2 = 104400
	const datumMidnight1 = 18000
	a := payload.TripAlight{
		Calendar:      newTwoDayCalendar(t),
		Timezone:      newTestTimezone(t),
		ServiceID:     1,
		TripIDs:       []string{"A"},
		Arrivals:      []int64{70000},
		StopSequences: []int{1},
		Overage:       -1,
	}

	in := travelstate.State{Time: datumMidnight2 + 1000} // before any arrival in day 2
	out, ok := a.WalkBack(in, travelstate.NewWalkOptions())
	require.True(t, ok)
	require.Equal(t, int64(datumMidnight1+70000), out.Time)
}

// TestTripAlight_ExhaustedCalendarFailsWithNoArrival drives
// tripalight.go's i<0 branch all the way to period.Prev() failing: a
// single-period calendar with no earlier arrival to offer and no prior
// service day to roll onto.
func TestTripAlight_ExhaustedCalendarFailsWithNoArrival(t *testing.T) {
	const datumMidnight = 18000
	a := payload.TripAlight{
		Calendar:      newOneDayCalendar(t),
		Timezone:      newTestTimezone(t),
		ServiceID:     1,
		TripIDs:       []string{"A"},
		Arrivals:      []int64{50000},
		StopSequences: []int{1},
		Overage:       -1,
	}

	_, ok := a.WalkBack(travelstate.State{Time: datumMidnight + 1000}, travelstate.NewWalkOptions())
	require.Falsef(t, ok, "expected %v", payload.ErrNoArrival)
}

func TestTripAlight_WalkClearsTripContext(t *testing.T) {
	a := payload.TripAlight{}
	in := travelstate.State{Time: 5000, TripID: "A", StopSequence: 3, NumTransfers: 1}

	out, ok := a.Walk(in, travelstate.NewWalkOptions())
	require.True(t, ok)
	require.Equal(t, "", out.TripID)
	require.Equal(t, travelstate.NoStopSequence, out.StopSequence)
	require.Equal(t, 0, out.NumTransfers)
}
