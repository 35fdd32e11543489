package payload_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viaduct/payload"
	"github.com/katalvlaran/viaduct/travelstate"
)

// Scenario 7 of spec §8.2.
func TestHeadwayBoard_MidWindowDefaultPolicyBoardsInstantly(t *testing.T) {
	const datumMidnight = 18000
	h := payload.HeadwayBoard{
		Calendar:    newOneDayCalendar(t),
		Timezone:    newTestTimezone(t),
		ServiceID:   1,
		TripID:      "freq-1",
		StartTime:   21600,
		EndTime:     64800,
		HeadwaySecs: 600,
	}
	opts := travelstate.NewWalkOptions()

	in := travelstate.State{Time: datumMidnight + 30000}
	out, ok := h.Walk(in, opts)
	require.True(t, ok)
	require.Equal(t, int64(datumMidnight+30000), out.Time)
	require.Equal(t, "freq-1", out.TripID)
	require.Equal(t, travelstate.NoStopSequence, out.StopSequence)
}

func TestHeadwayBoard_ExpectedWaitPolicyAddsHalfHeadway(t *testing.T) {
	const datumMidnight = 18000
	h := payload.HeadwayBoard{
		Calendar:    newOneDayCalendar(t),
		Timezone:    newTestTimezone(t),
		ServiceID:   1,
		TripID:      "freq-1",
		StartTime:   21600,
		EndTime:     64800,
		HeadwaySecs: 600,
	}
	opts := travelstate.NewWalkOptions(travelstate.WithHeadwayWaitPolicy(travelstate.HeadwayExpectedWait))

	out, ok := h.Walk(travelstate.State{Time: datumMidnight + 30000}, opts)
	require.True(t, ok)
	require.Equal(t, int64(datumMidnight+30300), out.Time)
}

func TestHeadwayBoard_WorstCaseWaitPolicyAddsFullHeadway(t *testing.T) {
	const datumMidnight = 18000
	h := payload.HeadwayBoard{
		Calendar:    newOneDayCalendar(t),
		Timezone:    newTestTimezone(t),
		ServiceID:   1,
		TripID:      "freq-1",
		StartTime:   21600,
		EndTime:     64800,
		HeadwaySecs: 600,
	}
	opts := travelstate.NewWalkOptions(travelstate.WithHeadwayWaitPolicy(travelstate.HeadwayWorstCaseWait))

	out, ok := h.Walk(travelstate.State{Time: datumMidnight + 30000}, opts)
	require.True(t, ok)
	require.Equal(t, int64(datumMidnight+30600), out.Time)
}

func TestHeadwayBoard_BeforeWindowBoardsAtStart(t *testing.T) {
	const datumMidnight = 18000
	h := payload.HeadwayBoard{
		Calendar:    newOneDayCalendar(t),
		Timezone:    newTestTimezone(t),
		ServiceID:   1,
		TripID:      "freq-1",
		StartTime:   21600,
		EndTime:     64800,
		HeadwaySecs: 600,
	}

	out, ok := h.Walk(travelstate.State{Time: datumMidnight + 1000}, travelstate.NewWalkOptions())
	require.True(t, ok)
	require.Equal(t, int64(datumMidnight+21600), out.Time)
}

func TestHeadwayBoard_AfterWindowRollsToNextDay(t *testing.T) {
	const datumMidnight2 = 104400
	h := payload.HeadwayBoard{
		Calendar:    newTwoDayCalendar(t),
		Timezone:    newTestTimezone(t),
		ServiceID:   1,
		TripID:      "freq-1",
		StartTime:   21600,
		EndTime:     64800,
		HeadwaySecs: 600,
	}

	in := travelstate.State{Time: 18000 + 70000} // past end_time
	out, ok := h.Walk(in, travelstate.NewWalkOptions())
	require.True(t, ok)
	require.Equal(t, int64(datumMidnight2+21600), out.Time)
}
