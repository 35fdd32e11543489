// Package travelstate defines the scalar State a traversal transforms
// and the WalkOptions that tune how it transforms it (spec §3.1, §3.2).
//
// State is a value type: every payload.Walk/WalkBack call returns a new
// State rather than mutating its input, which is what makes concurrent
// searches over the same shared graph safe without locking (spec §5).
// A failed or undefined traversal is represented by the Go idiom
// (State{}, false) rather than a null pointer, matching every other
// absent-value convention in this module.
package travelstate
