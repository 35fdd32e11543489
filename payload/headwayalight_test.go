package payload_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viaduct/payload"
	"github.com/katalvlaran/viaduct/travelstate"
)

func TestHeadwayAlight_MidWindowDefaultPolicyAlightsInstantly(t *testing.T) {
	const datumMidnight = 18000
	h := payload.HeadwayAlight{
		Calendar:    newOneDayCalendar(t),
		Timezone:    newTestTimezone(t),
		ServiceID:   1,
		TripID:      "freq-1",
		StartTime:   21600,
		EndTime:     64800,
		HeadwaySecs: 600,
	}

	in := travelstate.State{Time: datumMidnight + 30000}
	out, ok := h.WalkBack(in, travelstate.NewWalkOptions())
	require.True(t, ok)
	require.Equal(t, int64(datumMidnight+30000), out.Time)
	require.Equal(t, "freq-1", out.TripID)
}

func TestHeadwayAlight_AfterWindowAlightsAtEnd(t *testing.T) {
	const datumMidnight = 18000
	h := payload.HeadwayAlight{
		Calendar:    newOneDayCalendar(t),
		Timezone:    newTestTimezone(t),
		ServiceID:   1,
		TripID:      "freq-1",
		StartTime:   21600,
		EndTime:     64800,
		HeadwaySecs: 600,
	}

	in := travelstate.State{Time: datumMidnight + 70000}
	out, ok := h.WalkBack(in, travelstate.NewWalkOptions())
	require.True(t, ok)
	require.Equal(t, int64(datumMidnight+64800), out.Time)
}

func TestHeadwayAlight_WalkClearsTripContext(t *testing.T) {
	h := payload.HeadwayAlight{}
	in := travelstate.State{Time: 5000, TripID: "A", NumTransfers: 1}

	out, ok := h.Walk(in, travelstate.NewWalkOptions())
	require.True(t, ok)
	require.Equal(t, "", out.TripID)
	require.Equal(t, 0, out.NumTransfers)
}
