package tripgraph

import "errors"

var (
	// ErrEmptyVertexID is returned by AddVertex for an empty id.
	ErrEmptyVertexID = errors.New("tripgraph: vertex id is empty")

	// ErrDuplicateVertex is returned by AddVertex when the id already exists.
	ErrDuplicateVertex = errors.New("tripgraph: vertex already exists")

	// ErrVertexNotFound is returned when an edge references, or a query
	// names, a vertex id the graph does not contain.
	ErrVertexNotFound = errors.New("tripgraph: vertex not found")

	// ErrEmptyEdgeID names an empty edge id. AddEdge does not return
	// it: given an empty id, AddEdge generates one.
	ErrEmptyEdgeID = errors.New("tripgraph: edge id is empty")

	// ErrDuplicateEdge is returned by AddEdge when the id already exists.
	ErrDuplicateEdge = errors.New("tripgraph: edge already exists")

	// ErrNilPayload is returned by AddEdge when payload is nil.
	ErrNilPayload = errors.New("tripgraph: edge payload is nil")

	// ErrNoOrigin is returned by ShortestPath for an empty or unknown
	// origin vertex.
	ErrNoOrigin = errors.New("tripgraph: origin vertex not found")

	// ErrNilGraph is returned by ShortestPath for a nil *Graph.
	ErrNilGraph = errors.New("tripgraph: graph is nil")

	// ErrBadMaxWeight's message is the value WithMaxWeight panics with
	// for a negative cap.
	ErrBadMaxWeight = errors.New("tripgraph: MaxWeight must be non-negative")

	// ErrNoPath is returned by ReconstructPath when destination was
	// never reached by the search.
	ErrNoPath = errors.New("tripgraph: no path to destination")
)
