package payload

import (
	"sync"

	"github.com/katalvlaran/viaduct/travelstate"
)

// combinationCacheEntry holds the most recent (input, options, output)
// triple for one direction of a Combination (spec §9.6).
type combinationCacheEntry struct {
	valid bool
	in    travelstate.State
	opts  *travelstate.WalkOptions
	out   travelstate.State
}

func (e *combinationCacheEntry) hit(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	if e.valid && e.in == state && e.opts == opts {
		return e.out, true
	}
	return travelstate.State{}, false
}

func (e *combinationCacheEntry) store(state travelstate.State, opts *travelstate.WalkOptions, out travelstate.State) {
	e.valid = true
	e.in = state
	e.opts = opts
	e.out = out
}

// combinationCache is the single-slot-per-direction cache spec §4.13
// and §9.6 describe, guarded by a mutex so a Combination payload (like
// every payload, read-only after construction per spec §5) stays safe
// to walk concurrently from independent searches even though the cache
// itself is mutable storage.
type combinationCache struct {
	mu       sync.Mutex
	forward  combinationCacheEntry
	backward combinationCacheEntry
}

// Combination is a pre-assembled macro-edge composed of an ordered list
// of inner payloads (spec §4.13). Walk applies them in order; WalkBack
// applies them in reverse order under WalkBack. A zero-length
// Combination behaves as Link.
type Combination struct {
	Payloads []EdgePayload
	cache    *combinationCache
}

var _ EdgePayload = Combination{}

// NewCombination returns a Combination wrapping payloads in order, with
// its own private cache slot.
func NewCombination(payloads ...EdgePayload) Combination {
	return Combination{
		Payloads: payloads,
		cache:    &combinationCache{},
	}
}

// Kind returns KindCombination.
func (c Combination) Kind() Kind { return KindCombination }

// Walk applies c.Payloads in declared order, short-circuiting through
// the forward cache slot when state and opts match the most recent
// call (spec §9.6).
func (c Combination) Walk(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	if c.cache == nil {
		return c.walkUncached(state, opts)
	}

	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	if out, ok := c.cache.forward.hit(state, opts); ok {
		return out, true
	}

	out, ok := c.walkUncached(state, opts)
	if ok {
		c.cache.forward.store(state, opts, out)
	}
	return out, ok
}

// WalkBack applies c.Payloads in reverse order under WalkBack, using
// the backward cache slot symmetrically with Walk.
func (c Combination) WalkBack(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	if c.cache == nil {
		return c.walkBackUncached(state, opts)
	}

	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	if out, ok := c.cache.backward.hit(state, opts); ok {
		return out, true
	}

	out, ok := c.walkBackUncached(state, opts)
	if ok {
		c.cache.backward.store(state, opts, out)
	}
	return out, ok
}

func (c Combination) walkUncached(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	cur := state
	for _, p := range c.Payloads {
		var ok bool
		cur, ok = p.Walk(cur, opts)
		if !ok {
			return travelstate.State{}, false
		}
	}
	return cur, true
}

func (c Combination) walkBackUncached(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	cur := state
	for i := len(c.Payloads) - 1; i >= 0; i-- {
		var ok bool
		cur, ok = c.Payloads[i].WalkBack(cur, opts)
		if !ok {
			return travelstate.State{}, false
		}
	}
	return cur, true
}
