package tripgraph

import (
	"container/heap"

	"github.com/katalvlaran/viaduct/travelstate"
)

// ShortestPath finds, for every vertex reachable from origin under the
// configured SearchDirection, the least-weight travelstate.State
// reachable from initial. It generalizes the teacher's
// dijkstra.Dijkstra — same lazy-decrease-key min-heap loop — to relax
// payload.EdgePayload.Walk/WalkBack transforms of a travelstate.State
// instead of summing a fixed int64 edge weight, and to walk
// IncomingEdges with WalkBack when SearchDirection is Reverse (spec
// §6.1, §1's forward/reverse search requirement).
//
// Returns, per vertex id reached: its best State (State.PrevEdgeID
// names the edge that produced it) and the edge used to reach it, for
// ReconstructPath. Complexity: O((V+E) log V), matching the teacher's
// Dijkstra.
func ShortestPath(g *Graph, origin string, initial travelstate.State, opts ...SearchOption) (map[string]travelstate.State, map[string]*Edge, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if origin == "" || !g.HasVertex(origin) {
		return nil, nil, ErrNoOrigin
	}

	cfg := NewSearchOptions(opts...)

	best := make(map[string]travelstate.State)
	via := make(map[string]*Edge)
	visited := make(map[string]bool)

	pq := make(statePQ, 0)
	heap.Init(&pq)

	best[origin] = initial
	heap.Push(&pq, &stateItem{vertex: origin, state: initial})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*stateItem)
		u := item.vertex

		if visited[u] {
			continue
		}
		if item.state.Weight > cfg.MaxWeight {
			break
		}
		visited[u] = true

		edges, neighbor, err := neighborEdges(g, u, cfg.Direction)
		if err != nil {
			return nil, nil, err
		}

		for _, e := range edges {
			next := neighbor(e)

			out, ok := walkEdge(e, item.state, cfg.Direction, cfg.WalkOptions)
			if !ok {
				continue
			}
			out = out.WithPrevEdge(e.ID)
			if out.Weight > cfg.MaxWeight {
				continue
			}
			if existing, seen := best[next]; seen && existing.Weight <= out.Weight {
				continue
			}

			best[next] = out
			via[next] = e
			heap.Push(&pq, &stateItem{vertex: next, state: out})
		}
	}

	return best, via, nil
}

func neighborEdges(g *Graph, u string, dir SearchDirection) ([]*Edge, func(*Edge) string, error) {
	if dir == Reverse {
		edges, err := g.IncomingEdges(u)
		return edges, func(e *Edge) string { return e.From }, err
	}
	edges, err := g.OutgoingEdges(u)
	return edges, func(e *Edge) string { return e.To }, err
}

func walkEdge(e *Edge, state travelstate.State, dir SearchDirection, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	if dir == Reverse {
		return e.Payload.WalkBack(state, opts)
	}
	return e.Payload.Walk(state, opts)
}

// ReconstructPath rebuilds the Path from origin to destination out of
// the via map ShortestPath returned, by following predecessor edges
// back from destination (through From for a Forward search, To for a
// Reverse one) and reversing the collected hops, so the returned Path
// always reads from the search's origin to destination. Payloads are
// not walked again.
func ReconstructPath(origin, destination string, via map[string]*Edge, dir SearchDirection) (*Path, error) {
	if destination == origin {
		return NewPath(origin), nil
	}

	var hops []*Edge
	cur := destination
	for cur != origin {
		e, ok := via[cur]
		if !ok {
			return nil, ErrNoPath
		}
		hops = append(hops, e)
		if dir == Reverse {
			cur = e.To
		} else {
			cur = e.From
		}
	}

	// hops is destination-to-origin; reverse it to origin-to-destination.
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	path := NewPath(origin)
	for _, e := range hops {
		next := e.To
		if dir == Reverse {
			next = e.From
		}
		path.Append(e, next)
	}

	return path, nil
}

// stateItem pairs a vertex with the State that reached it, ordered by
// State.Weight ascending — the same lazy-decrease-key heap entry shape
// as the teacher's dijkstra.nodeItem, generalized from a bare int64
// distance to a full travelstate.State.
type stateItem struct {
	vertex string
	state  travelstate.State
}

type statePQ []*stateItem

func (pq statePQ) Len() int            { return len(pq) }
func (pq statePQ) Less(i, j int) bool  { return pq[i].state.Weight < pq[j].state.Weight }
func (pq statePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ) Push(x any)         { *pq = append(*pq, x.(*stateItem)) }
func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
