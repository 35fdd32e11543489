package tripgraph

import (
	"math"

	"github.com/katalvlaran/viaduct/travelstate"
)

// SearchDirection selects whether ShortestPath walks edges forward in
// time (depart at T, minimize arrival) or backward (arrive by T,
// minimize departure), per spec §1's "supporting both forward
// (arrive-after) and reverse (depart-before) search".
type SearchDirection int

const (
	// Forward walks OutgoingEdges with EdgePayload.Walk.
	Forward SearchDirection = iota

	// Reverse walks IncomingEdges with EdgePayload.WalkBack.
	Reverse
)

// SearchOptions configures ShortestPath.
type SearchOptions struct {
	Direction   SearchDirection
	WalkOptions *travelstate.WalkOptions
	MaxWeight   int64
}

// SearchOption is a functional option for SearchOptions, matching the
// teacher's dijkstra.Option convention.
type SearchOption func(*SearchOptions)

// DefaultSearchOptions returns Forward search with default
// travelstate.WalkOptions and no weight cap.
func DefaultSearchOptions() SearchOptions {
	defaults := travelstate.DefaultWalkOptions()
	return SearchOptions{
		Direction:   Forward,
		WalkOptions: &defaults,
		MaxWeight:   math.MaxInt64,
	}
}

// WithDirection sets the search direction.
func WithDirection(d SearchDirection) SearchOption {
	return func(o *SearchOptions) { o.Direction = d }
}

// WithWalkOptions sets the travelstate.WalkOptions every Walk/WalkBack
// call in this search uses.
func WithWalkOptions(walkOpts *travelstate.WalkOptions) SearchOption {
	return func(o *SearchOptions) { o.WalkOptions = walkOpts }
}

// WithMaxWeight caps exploration to states with Weight <= max,
// mirroring the teacher's WithMaxDistance.
func WithMaxWeight(max int64) SearchOption {
	return func(o *SearchOptions) {
		if max < 0 {
			panic(ErrBadMaxWeight.Error())
		}
		o.MaxWeight = max
	}
}

// NewSearchOptions applies opts over DefaultSearchOptions.
func NewSearchOptions(opts ...SearchOption) *SearchOptions {
	cfg := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}
