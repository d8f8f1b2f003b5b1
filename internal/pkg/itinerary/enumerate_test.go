//go:build unit

package itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func testLeg(id, origin, destination string, departure, arrival time.Time) Leg {
	return Leg{
		ID:              id,
		Origin:          origin,
		Destination:     destination,
		Departure:       departure,
		Arrival:         arrival,
		DurationMinutes: int(arrival.Sub(departure).Minutes()),
	}
}

func TestEnumerator_Enumerate_Closure(t *testing.T) {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	enumerateRequest := func(policy Policy, legs []Leg, origin, destination string, wantPathIDs [][]string) func(t *testing.T) {
		return func(t *testing.T) {
			enumerator := NewEnumerator(policy)

			paths, err := enumerator.Enumerate(context.Background(), BuildGraph(legs, day), origin, destination)
			assert.NoError(t, err)

			var gotPathIDs [][]string
			for _, path := range paths {
				ids := make([]string, len(path))
				for j, leg := range path {
					ids[j] = leg.ID
				}
				gotPathIDs = append(gotPathIDs, ids)
			}

			if diff := cmp.Diff(wantPathIDs, gotPathIDs); diff != "" {
				t.Fatalf("Enumerate result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	connection := []Leg{
		testLeg("direct", "JFK", "LHR", at(8, 0), at(15, 0)),
		testLeg("hop-1", "JFK", "YYZ", at(9, 0), at(10, 30)),
		testLeg("hop-2", "YYZ", "LHR", at(11, 30), at(18, 30)),
	}

	t.Run("direct_and_connection", enumerateRequest(
		DefaultPolicy(), connection, "JFK", "LHR",
		[][]string{{"direct"}, {"hop-1", "hop-2"}},
	))

	t.Run("direct_not_duplicated", enumerateRequest(
		DefaultPolicy(),
		[]Leg{testLeg("direct", "JFK", "LHR", at(8, 0), at(15, 0))},
		"JFK", "LHR",
		[][]string{{"direct"}},
	))

	t.Run("second_leg_departs_before_arrival", enumerateRequest(
		DefaultPolicy(),
		[]Leg{
			testLeg("hop-1", "JFK", "YYZ", at(9, 0), at(12, 0)),
			testLeg("hop-2", "YYZ", "LHR", at(11, 0), at(18, 0)),
		},
		"JFK", "LHR",
		nil,
	))

	t.Run("layover_below_minimum", enumerateRequest(
		DefaultPolicy(),
		[]Leg{
			testLeg("hop-1", "JFK", "YYZ", at(9, 0), at(10, 30)),
			testLeg("hop-2", "YYZ", "LHR", at(10, 45), at(17, 45)),
		},
		"JFK", "LHR",
		nil,
	))

	t.Run("layover_above_maximum", enumerateRequest(
		DefaultPolicy(),
		[]Leg{
			testLeg("hop-1", "JFK", "YYZ", at(1, 0), at(2, 0)),
			testLeg("hop-2", "YYZ", "LHR", at(9, 30), at(16, 30)),
		},
		"JFK", "LHR",
		nil,
	))

	t.Run("layover_exactly_minimum_allowed", enumerateRequest(
		DefaultPolicy(),
		[]Leg{
			testLeg("hop-1", "JFK", "YYZ", at(9, 0), at(10, 30)),
			testLeg("hop-2", "YYZ", "LHR", at(11, 0), at(18, 0)),
		},
		"JFK", "LHR",
		[][]string{{"hop-1", "hop-2"}},
	))

	longChain := []Leg{
		testLeg("a-b", "AAA", "BBB", at(6, 0), at(7, 0)),
		testLeg("b-c", "BBB", "CCC", at(8, 0), at(9, 0)),
		testLeg("c-d", "CCC", "DDD", at(10, 0), at(11, 0)),
		testLeg("d-e", "DDD", "EEE", at(12, 0), at(13, 0)),
	}

	t.Run("max_legs_bounds_depth", enumerateRequest(
		DefaultPolicy(), longChain, "AAA", "EEE",
		nil,
	))

	t.Run("higher_max_legs_reaches_deeper", enumerateRequest(
		Policy{MaxLegs: 4, MinLayover: DefaultMinLayover, MaxLayover: DefaultMaxLayover},
		longChain, "AAA", "EEE",
		[][]string{{"a-b", "b-c", "c-d", "d-e"}},
	))

	// Intermediate airports are never revisited, but the origin itself is
	// not marked visited, matching the shipped behavior.
	t.Run("origin_revisit_allowed_intermediate_blocked", enumerateRequest(
		DefaultPolicy(),
		[]Leg{
			testLeg("out", "JFK", "YYZ", at(6, 0), at(7, 0)),
			testLeg("back", "YYZ", "JFK", at(8, 0), at(9, 0)),
			testLeg("onward", "JFK", "LHR", at(10, 0), at(17, 0)),
		},
		"JFK", "LHR",
		[][]string{{"out", "back", "onward"}, {"onward"}},
	))

	t.Run("origin_without_outgoing_legs", enumerateRequest(
		DefaultPolicy(), connection, "CDG", "LHR",
		nil,
	))

	t.Run("empty_graph", enumerateRequest(
		DefaultPolicy(), nil, "JFK", "LHR",
		nil,
	))
}

func TestEnumerator_Enumerate_Invariants(t *testing.T) {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	legs := []Leg{
		testLeg("direct", "JFK", "LHR", at(8, 0), at(15, 0)),
		testLeg("hop-1a", "JFK", "YYZ", at(7, 0), at(8, 30)),
		testLeg("hop-1b", "JFK", "BOS", at(7, 30), at(8, 30)),
		testLeg("hop-2a", "YYZ", "LHR", at(9, 30), at(16, 30)),
		testLeg("hop-2b", "BOS", "LHR", at(10, 0), at(17, 0)),
		testLeg("hop-3", "YYZ", "BOS", at(9, 15), at(10, 15)),
	}

	enumerator := NewEnumerator(DefaultPolicy())

	paths, err := enumerator.Enumerate(context.Background(), BuildGraph(legs, day), "JFK", "LHR")
	assert.NoError(t, err)
	assert.NotEmpty(t, paths)

	for _, path := range paths {
		assert.Equal(t, "JFK", path[0].Origin)
		assert.Equal(t, "LHR", path[len(path)-1].Destination)
		assert.LessOrEqual(t, len(path), DefaultMaxLegs)

		for i := 1; i < len(path); i++ {
			assert.Equal(t, path[i-1].Destination, path[i].Origin)
			assert.True(t, path[i].Departure.After(path[i-1].Arrival))
		}
	}
}

func TestEnumerator_Enumerate_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	legs := []Leg{testLeg("direct", "JFK", "LHR",
		time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC))}

	enumerator := NewEnumerator(DefaultPolicy())

	_, err := enumerator.Enumerate(ctx, BuildGraph(legs, time.Time{}), "JFK", "LHR")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewEnumerator_ClampsPolicy(t *testing.T) {
	clampRequest := func(maxLegs, want int) func(t *testing.T) {
		return func(t *testing.T) {
			enumerator := NewEnumerator(Policy{MaxLegs: maxLegs})
			if enumerator.policy.MaxLegs != want {
				t.Fatalf("expected max legs %d, got %d", want, enumerator.policy.MaxLegs)
			}
		}
	}

	t.Run("zero_falls_back_to_default", clampRequest(0, DefaultMaxLegs))
	t.Run("oversized_falls_back_to_default", clampRequest(12, DefaultMaxLegs))
	t.Run("in_range_kept", clampRequest(4, 4))
}
