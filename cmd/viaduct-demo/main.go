// Command viaduct-demo builds a small synthetic walk-plus-transit
// network and prints the cheapest itinerary between two stops.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/viaduct/calendar"
	"github.com/katalvlaran/viaduct/payload"
	"github.com/katalvlaran/viaduct/travelstate"
	"github.com/katalvlaran/viaduct/tripgraph"
	"github.com/katalvlaran/viaduct/tzdata"
)

func main() {
	depart := flag.Int64("depart", 6*3600+3300, "departure time, seconds since local midnight")
	flag.Parse()

	const weekday calendar.ServiceID = 1

	cal := calendar.NewServiceCalendar()
	if err := cal.AddPeriod(calendar.ServicePeriod{
		BeginTime:  0,
		EndTime:    86399,
		ServiceIDs: []calendar.ServiceID{weekday},
	}); err != nil {
		log.Fatalf("add period: %v", err)
	}

	tz, err := tzdata.NewTimezone(tzdata.TimezonePeriod{
		BeginTime: -1 << 40,
		EndTime:   1 << 40,
		UTCOffset: 0,
	})
	if err != nil {
		log.Fatalf("new timezone: %v", err)
	}

	g := tripgraph.NewGraph()
	for _, v := range []string{"home", "stopA", "stopB"} {
		if err := g.AddVertex(v, nil); err != nil {
			log.Fatalf("add vertex %s: %v", v, err)
		}
	}
	if _, err := g.AddEdge("walk-to-stopA", "home", "stopA", payload.Street{
		Name: "Elm St", Length: 240, Way: 1,
	}); err != nil {
		log.Fatalf("add street edge: %v", err)
	}
	if _, err := g.AddEdge("board-route9", "stopA", "stopB", payload.TripBoard{
		Calendar:      cal,
		Timezone:      tz,
		ServiceID:     weekday,
		TripIDs:       []string{"route9-0700", "route9-0715", "route9-0730"},
		Departs:       []int64{7 * 3600, 7*3600 + 900, 7*3600 + 1800},
		StopSequences: []int{1, 1, 1},
		Overage:       -1,
	}); err != nil {
		log.Fatalf("add board edge: %v", err)
	}

	start := travelstate.State{Time: *depart}
	best, via, err := tripgraph.ShortestPath(g, "home", start)
	if err != nil {
		log.Fatalf("shortest path: %v", err)
	}

	arrival, ok := best["stopB"]
	if !ok {
		log.Fatal("no itinerary reaches stopB at that departure time")
	}

	path, err := tripgraph.ReconstructPath("home", "stopB", via, tripgraph.Forward)
	if err != nil {
		log.Fatalf("reconstruct path: %v", err)
	}

	fmt.Printf("Route: %v\n", path.Vertices())
	fmt.Printf("Boarded trip: %s\n", arrival.TripID)
	fmt.Printf("Arrival time of day: %d\n", arrival.Time%86400)
	fmt.Printf("Total weight: %d\n", arrival.Weight)
}
