package tripgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viaduct/payload"
	"github.com/katalvlaran/viaduct/tripgraph"
)

func TestGraph_AddVertexRejectsEmptyAndDuplicate(t *testing.T) {
	g := tripgraph.NewGraph()
	require.ErrorIs(t, g.AddVertex("", nil), tripgraph.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("a", nil))
	require.ErrorIs(t, g.AddVertex("a", nil), tripgraph.ErrDuplicateVertex)
}

func TestGraph_AddEdgeRequiresKnownVertices(t *testing.T) {
	g := tripgraph.NewGraph()
	require.NoError(t, g.AddVertex("a", nil))

	_, err := g.AddEdge("", "a", "b", payload.Link{})
	require.ErrorIs(t, err, tripgraph.ErrVertexNotFound)
}

func TestGraph_AddEdgeGeneratesIDWhenEmpty(t *testing.T) {
	g := tripgraph.NewGraph()
	require.NoError(t, g.AddVertex("a", nil))
	require.NoError(t, g.AddVertex("b", nil))

	e, err := g.AddEdge("", "a", "b", payload.Link{})
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)
}

func TestGraph_OutgoingAndIncomingEdges(t *testing.T) {
	g := tripgraph.NewGraph()
	require.NoError(t, g.AddVertex("a", nil))
	require.NoError(t, g.AddVertex("b", nil))
	require.NoError(t, g.AddVertex("c", nil))

	_, err := g.AddEdge("ab", "a", "b", payload.Link{})
	require.NoError(t, err)
	_, err = g.AddEdge("ac", "a", "c", payload.Link{})
	require.NoError(t, err)

	out, err := g.OutgoingEdges("a")
	require.NoError(t, err)
	require.Len(t, out, 2)

	in, err := g.IncomingEdges("b")
	require.NoError(t, err)
	require.Len(t, in, 1)
	require.Equal(t, "ab", in[0].ID)
}

func TestGraph_OutgoingEdgesUnknownVertexFails(t *testing.T) {
	g := tripgraph.NewGraph()
	_, err := g.OutgoingEdges("missing")
	require.ErrorIs(t, err, tripgraph.ErrVertexNotFound)
}
