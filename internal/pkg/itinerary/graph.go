package itinerary

import "time"

// Graph maps an origin airport code to the legs departing from it.
type Graph map[string][]Leg

// BuildGraph indexes a catalogue snapshot by origin airport. When date is
// non-zero only legs departing within [date 00:00:00, date 23:59:59] in the
// date's location are kept. A zero date disables the filter.
func BuildGraph(legs []Leg, date time.Time) Graph {
	graph := make(Graph, len(legs))

	var startOfDay, endOfDay time.Time
	if !date.IsZero() {
		year, month, day := date.Date()
		startOfDay = time.Date(year, month, day, 0, 0, 0, 0, date.Location())
		endOfDay = time.Date(year, month, day, 23, 59, 59, 0, date.Location())
	}

	for _, leg := range legs {
		if !date.IsZero() {
			if leg.Departure.Before(startOfDay) || leg.Departure.After(endOfDay) {
				continue
			}
		}

		graph[leg.Origin] = append(graph[leg.Origin], leg)
	}

	return graph
}
