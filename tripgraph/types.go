package tripgraph

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/viaduct/payload"
)

// Vertex is a node in the graph: a stop, a street intersection, or any
// other point a traveler's State can be evaluated at.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Metadata stores arbitrary user data (a GTFS stop name, a
	// lat/lon pair, …), not interpreted by the core per spec §1.
	Metadata map[string]any
}

// Edge owns exactly one EdgePayload (spec §3.4). ID is assigned by
// AddEdge if the caller leaves it empty, using google/uuid so
// travelstate.State.PrevEdgeID values are stable, collision-free
// identifiers a driver can hand back to Graph.Edge for reconstruction.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID; To is the destination vertex ID.
	From string
	To   string

	// Payload is this edge's EdgePayload (spec §3.4); never nil once
	// added via Graph.AddEdge.
	Payload payload.EdgePayload
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithCapacityHint preallocates the vertex map for an expected vertex
// count, avoiding rehashing while a large network is built.
func WithCapacityHint(vertices int) GraphOption {
	return func(g *Graph) {
		g.vertices = make(map[string]*Vertex, vertices)
	}
}

// Graph is a reference in-memory implementation of the driver contract
// spec §6.1 requires: enumerate outgoing/incoming edges per vertex, and
// expose each Edge's EdgePayload. Adapted from the teacher's
// core.Graph, split into forward and reverse adjacency so
// OutgoingEdges and IncomingEdges are both O(degree) instead of one of
// them requiring a full edge scan.
type Graph struct {
	mu sync.RWMutex

	vertices map[string]*Vertex
	edges    map[string]*Edge

	outgoing map[string][]*Edge
	incoming map[string][]*Edge
}

// NewGraph returns an empty Graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		outgoing: make(map[string][]*Edge),
		incoming: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddVertex registers a new vertex. Complexity: O(1).
func (g *Graph) AddVertex(id string, metadata map[string]any) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrDuplicateVertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: metadata}

	return nil
}

// HasVertex reports whether id names a vertex in g.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]
	return ok
}

// Vertices returns every vertex ID in sorted order, mirroring
// core.Graph.Vertices's deterministic-iteration convention.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// AddEdge registers a new directed edge from→to carrying p. If id is
// empty, a uuid is generated. Complexity: O(1).
func (g *Graph) AddEdge(id, from, to string, p payload.EdgePayload) (*Edge, error) {
	if p == nil {
		return nil, ErrNilPayload
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return nil, ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return nil, ErrVertexNotFound
	}

	if id == "" {
		id = uuid.NewString()
	} else if _, exists := g.edges[id]; exists {
		return nil, ErrDuplicateEdge
	}

	e := &Edge{ID: id, From: from, To: to, Payload: p}
	g.edges[id] = e
	g.outgoing[from] = append(g.outgoing[from], e)
	g.incoming[to] = append(g.incoming[to], e)

	return e, nil
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	return e, ok
}

// OutgoingEdges returns every edge leaving id, for forward search
// (spec §6.1).
func (g *Graph) OutgoingEdges(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	return g.outgoing[id], nil
}

// IncomingEdges returns every edge arriving at id, for reverse search
// (spec §6.1).
func (g *Graph) IncomingEdges(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	return g.incoming[id], nil
}
