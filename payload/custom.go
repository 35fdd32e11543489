package payload

import "github.com/katalvlaran/viaduct/travelstate"

// CustomDispatch is the {walk, walk_back, destroy} table a Custom
// payload invokes (spec §4.12). Walk and WalkBack receive the opaque
// Data a Custom payload carries; Destroy releases it.
type CustomDispatch struct {
	Walk     func(data any, state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool)
	WalkBack func(data any, state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool)
	Destroy  func(data any)
}

// Custom is the escape hatch for payload kinds this package does not
// model directly: an opaque value plus the dispatch table that knows
// how to walk it (spec §4.12).
type Custom struct {
	Data     any
	Dispatch CustomDispatch
}

var _ EdgePayload = Custom{}

// Kind returns KindCustom.
func (c Custom) Kind() Kind { return KindCustom }

// Walk delegates to c.Dispatch.Walk. A nil Walk entry, or the entry
// itself returning absent, both surface as ErrCustomFailure's scenario:
// ok == false.
func (c Custom) Walk(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	if c.Dispatch.Walk == nil {
		return travelstate.State{}, false
	}
	return c.Dispatch.Walk(c.Data, state, opts)
}

// WalkBack delegates to c.Dispatch.WalkBack.
func (c Custom) WalkBack(state travelstate.State, opts *travelstate.WalkOptions) (travelstate.State, bool) {
	if c.Dispatch.WalkBack == nil {
		return travelstate.State{}, false
	}
	return c.Dispatch.WalkBack(c.Data, state, opts)
}

// Close invokes c.Dispatch.Destroy, if set, releasing c.Data.
// Ownership of the opaque payload follows this callback (spec §4.12);
// a graph driver that removes an edge carrying a Custom payload should
// call Close during teardown.
func (c Custom) Close() {
	if c.Dispatch.Destroy != nil {
		c.Dispatch.Destroy(c.Data)
	}
}
