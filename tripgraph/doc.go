// Package tripgraph is a reference graph driver for the payload
// package's EdgePayload family: it owns vertices and edges, exposes
// the enumeration contract spec §6.1 requires of any driver, and
// includes a ShortestPath search generalizing the teacher's Dijkstra
// runner to walk payload.EdgePayload instead of a fixed integer weight.
//
// Out of scope (spec §1): this is one possible driver among many a
// payload-family caller could supply; payload and travelstate never
// import tripgraph, and nothing in those packages requires this
// particular graph representation.
package tripgraph
