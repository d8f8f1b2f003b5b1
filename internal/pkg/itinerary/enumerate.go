package itinerary

import (
	"context"
	"time"
)

const (
	DefaultMaxLegs    = 3
	DefaultMinLayover = 30 * time.Minute
	DefaultMaxLayover = 6 * time.Hour

	// MaxLegsLimit bounds caller-supplied policy so the DFS stays finite
	// even on pathological configuration.
	MaxLegsLimit = 5
)

// Policy holds the tunable constraints of one enumeration. Zero layover
// bounds disable the layover window check.
type Policy struct {
	MaxLegs    int
	MinLayover time.Duration
	MaxLayover time.Duration
}

// DefaultPolicy returns the constraints observed in production: up to 3 legs,
// layovers between 30 minutes and 6 hours.
func DefaultPolicy() Policy {
	return Policy{
		MaxLegs:    DefaultMaxLegs,
		MinLayover: DefaultMinLayover,
		MaxLayover: DefaultMaxLayover,
	}
}

// Enumerator performs depth-first search over a departure graph. It owns its
// path stack and visited set exclusively for the duration of one traversal,
// so a fresh Enumerator is safe per call site and none is shared.
type Enumerator struct {
	policy Policy
}

func NewEnumerator(policy Policy) *Enumerator {
	if policy.MaxLegs <= 0 || policy.MaxLegs > MaxLegsLimit {
		policy.MaxLegs = DefaultMaxLegs
	}

	return &Enumerator{policy: policy}
}

// Enumerate returns every leg sequence from origin to destination that
// satisfies the temporal, layover and leg-count constraints. A destination
// reached mid-path is recorded and exploration continues through it, so
// longer itineraries passing through the destination are found as well.
// An origin with no outgoing legs yields an empty result, not an error.
func (e *Enumerator) Enumerate(ctx context.Context, graph Graph, origin, destination string) ([][]Leg, error) {
	walk := walker{
		graph:       graph,
		destination: destination,
		policy:      e.policy,
		visited:     map[string]bool{},
	}

	if err := walk.dfs(ctx, origin); err != nil {
		return nil, err
	}

	walk.ensureDirects(origin)

	return walk.paths, nil
}

type walker struct {
	graph       Graph
	destination string
	policy      Policy
	path        []Leg
	visited     map[string]bool
	paths       [][]Leg
}

func (w *walker) dfs(ctx context.Context, current string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(w.path) >= w.policy.MaxLegs {
		return nil
	}

	for _, leg := range w.graph[current] {
		if w.visited[leg.Destination] {
			continue
		}

		if !w.connects(leg) {
			continue
		}

		w.path = append(w.path, leg)
		w.visited[leg.Destination] = true

		if leg.Destination == w.destination {
			w.record()
		}

		if err := w.dfs(ctx, leg.Destination); err != nil {
			return err
		}

		w.path = w.path[:len(w.path)-1]
		w.visited[leg.Destination] = false
	}

	return nil
}

// connects reports whether leg is a valid continuation of the current path:
// it must depart strictly after the previous arrival and, when a layover
// window is configured, the ground time must fall inside it.
func (w *walker) connects(leg Leg) bool {
	if len(w.path) == 0 {
		return true
	}

	lastArrival := w.path[len(w.path)-1].Arrival
	if !leg.Departure.After(lastArrival) {
		return false
	}

	layover := leg.Departure.Sub(lastArrival)
	if w.policy.MinLayover > 0 && layover < w.policy.MinLayover {
		return false
	}

	if w.policy.MaxLayover > 0 && layover > w.policy.MaxLayover {
		return false
	}

	return true
}

func (w *walker) record() {
	recorded := make([]Leg, len(w.path))
	copy(recorded, w.path)
	w.paths = append(w.paths, recorded)
}

// ensureDirects guarantees every direct origin->destination leg is present
// as a single-leg path even if the recursive step skipped it. Directs the
// DFS already recorded are not added twice.
func (w *walker) ensureDirects(origin string) {
	seen := make(map[string]bool)

	for _, path := range w.paths {
		if len(path) == 1 {
			seen[path[0].ID] = true
		}
	}

	for _, leg := range w.graph[origin] {
		if leg.Destination != w.destination || seen[leg.ID] {
			continue
		}

		w.paths = append(w.paths, []Leg{leg})
	}
}
