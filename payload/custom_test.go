package payload_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viaduct/payload"
	"github.com/katalvlaran/viaduct/travelstate"
)

func TestCustom_WalkDelegatesToDispatch(t *testing.T) {
	c := payload.Custom{
		Data: 42,
		Dispatch: payload.CustomDispatch{
			Walk: func(data any, state travelstate.State, _ *travelstate.WalkOptions) (travelstate.State, bool) {
				state.Weight += int64(data.(int))
				return state, true
			},
		},
	}

	out, ok := c.Walk(travelstate.State{}, travelstate.NewWalkOptions())
	require.True(t, ok)
	require.Equal(t, int64(42), out.Weight)
}

func TestCustom_WalkWithNoDispatchFails(t *testing.T) {
	c := payload.Custom{}
	_, ok := c.Walk(travelstate.State{}, travelstate.NewWalkOptions())
	require.Falsef(t, ok, "expected %v", payload.ErrCustomFailure)
}

func TestCustom_CloseInvokesDestroy(t *testing.T) {
	destroyed := false
	c := payload.Custom{
		Data: "handle",
		Dispatch: payload.CustomDispatch{
			Destroy: func(data any) {
				destroyed = true
				require.Equal(t, "handle", data)
			},
		},
	}

	c.Close()
	require.True(t, destroyed)
}

func TestCustom_CloseWithNoDestroyIsNoop(t *testing.T) {
	c := payload.Custom{}
	require.NotPanics(t, func() { c.Close() })
}
