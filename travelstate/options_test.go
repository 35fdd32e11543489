package travelstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viaduct/travelstate"
)

func TestNewWalkOptions_Defaults(t *testing.T) {
	wo := travelstate.NewWalkOptions()
	require.Equal(t, travelstate.DefaultWalkOptions(), *wo)
}

func TestNewWalkOptions_AppliesOptionsLeftToRight(t *testing.T) {
	wo := travelstate.NewWalkOptions(
		travelstate.WithWalkingSpeed(2),
		travelstate.WithTransferPenalty(300),
		travelstate.WithMaxWalk(100),
		travelstate.WithTurnPenalty(10),
		travelstate.WithHillParams(1, 0.5, 0.1),
		travelstate.WithHeadwayWaitPolicy(travelstate.HeadwayExpectedWait),
	)

	require.Equal(t, 2.0, wo.WalkingSpeed)
	require.Equal(t, int64(300), wo.TransferPenalty)
	require.Equal(t, 100.0, wo.MaxWalk)
	require.Equal(t, int64(10), wo.TurnPenalty)
	require.Equal(t, 1.0, wo.UphillSlowness)
	require.Equal(t, 0.5, wo.DownhillFastness)
	require.Equal(t, 0.1, wo.HillReluctance)
	require.Equal(t, travelstate.HeadwayExpectedWait, wo.HeadwayWaitPolicy)
}

func TestWithWalkingSpeed_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { travelstate.WithWalkingSpeed(0) })
	require.Panics(t, func() { travelstate.WithWalkingSpeed(-1) })
}

func TestWithMaxWalk_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { travelstate.WithMaxWalk(-1) })
}

func TestState_WithPrevEdge(t *testing.T) {
	s := travelstate.State{Time: 10}
	s2 := s.WithPrevEdge("edge-1")

	require.Equal(t, "", s.PrevEdgeID, "receiver must not be mutated")
	require.Equal(t, "edge-1", s2.PrevEdgeID)
	require.Equal(t, s.Time, s2.Time)
}

func TestState_Comparable(t *testing.T) {
	a := travelstate.State{Time: 1, Weight: 2, TripID: "T1", StopSequence: travelstate.NoStopSequence}
	b := a
	require.Equal(t, a, b)
	require.True(t, a == b)
}
