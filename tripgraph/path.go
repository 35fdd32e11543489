package tripgraph

// Path is an alternating sequence Vertex, Edge, Vertex, …, Vertex of
// length 2k+1 (spec §3.5), ported from original_source/core/path.h's
// pathNew/pathAddSegment/pathGetVertex/pathGetEdge into a value-safe Go
// type: append-only during reconstruction via Append, immutable
// thereafter because its fields are unexported and only ever read back
// through Vertices/Edges.
type Path struct {
	vertices []string
	edges    []*Edge
}

// NewPath starts a Path at origin (pathNew in the original).
func NewPath(origin string) *Path {
	return &Path{vertices: []string{origin}}
}

// Append extends the path by one segment: edge, then the vertex it
// leads to (pathAddSegment in the original).
func (p *Path) Append(edge *Edge, to string) {
	p.edges = append(p.edges, edge)
	p.vertices = append(p.vertices, to)
}

// Len returns k, the number of edges in the path (pathGetSize in the
// original counted total elements; this returns the edge count, which
// is more directly useful to a Go caller since len(Vertices()) ==
// Len()+1 always holds).
func (p *Path) Len() int {
	return len(p.edges)
}

// Vertices returns the path's vertex sequence, origin first.
func (p *Path) Vertices() []string {
	return append([]string(nil), p.vertices...)
}

// Edges returns the path's edge sequence, in traversal order.
func (p *Path) Edges() []*Edge {
	return append([]*Edge(nil), p.edges...)
}

// Origin returns the path's first vertex.
func (p *Path) Origin() string {
	return p.vertices[0]
}

// Destination returns the path's last vertex.
func (p *Path) Destination() string {
	return p.vertices[len(p.vertices)-1]
}

// Vector is a trivial append-only sequence container, ported from
// original_source/core/vector.h's vecNew/vecAdd/vecGet. Go's slices
// already give this for free; Vector exists only so driver code that
// accumulates search results (candidate paths, frontier snapshots) has
// the same named type the original's callers built against, per spec
// §2 component 5.
type Vector[T any] struct {
	items []T
}

// NewVector returns an empty Vector with capacity preallocated.
func NewVector[T any](capacity int) *Vector[T] {
	return &Vector[T]{items: make([]T, 0, capacity)}
}

// Add appends element to the vector.
func (v *Vector[T]) Add(element T) {
	v.items = append(v.items, element)
}

// Get returns the element at index, and whether index was in range.
func (v *Vector[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[index], true
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return len(v.items)
}

// Items returns the vector's backing elements in insertion order.
func (v *Vector[T]) Items() []T {
	return append([]T(nil), v.items...)
}
