package itinerary

import (
	"sort"
	"strings"
)

const (
	FilterCheapest = "cheapest"
	FilterFastest  = "fastest"
)

// Ranked is the capability shared by one-way itineraries and round trips
// that the ranking strategy orders on.
type Ranked interface {
	TotalPrice() float64
	TotalDuration() int
}

// Rank orders items in place by the given criterion: "fastest" sorts by
// ascending total duration, "cheapest" by ascending total price. An absent
// or unrecognized criterion falls back to cheapest. The sort is stable so
// equal-key items keep their generation order.
func Rank[T Ranked](items []T, criterion string) []T {
	var less func(i, j int) bool

	switch strings.ToLower(criterion) {
	case FilterFastest:
		less = func(i, j int) bool {
			return items[i].TotalDuration() < items[j].TotalDuration()
		}
	default:
		less = func(i, j int) bool {
			return items[i].TotalPrice() < items[j].TotalPrice()
		}
	}

	sort.SliceStable(items, less)

	return items
}
