// Package viaduct is the routing core of a multi-modal trip planner:
// street walking, scheduled transit, and headway-based transit combined
// into one weighted search over rider experience rather than raw
// distance.
//
// The module is organized as:
//
//	travelstate/ — the State a search carries across an edge, and the
//	               WalkOptions that tune reluctance, penalties and speed
//	payload/     — the EdgePayload union: Street, Egress, Link, Wait,
//	               ElapseTime, Crossing, TripBoard/TripAlight,
//	               HeadwayBoard/HeadwayAlight, Headway, Combination,
//	               Custom — each a Walk/WalkBack pair over State
//	calendar/    — ServiceCalendar and ServicePeriod, resolving which
//	               days a scheduled trip actually runs
//	tzdata/      — Timezone, converting absolute times to time-of-day
//	               for schedule lookups
//	tripgraph/   — Graph, Vertex, Edge and the ShortestPath driver that
//	               walks EdgePayload transforms across a network
//
// cmd/viaduct-demo builds a small synthetic network and prints the
// resulting itinerary.
package viaduct
