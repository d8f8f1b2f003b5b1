package itinerary

// RoundTrip pairs an outbound and a return itinerary. Totals are the sums of
// the two already-discounted itinerary totals; no further discount is applied
// across the pairing.
type RoundTrip struct {
	Outbound        Itinerary `json:"outbound"`
	Return          Itinerary `json:"return"`
	Price           float64   `json:"total_price"`
	DurationMinutes int       `json:"total_duration_minutes"`
}

func (r RoundTrip) TotalPrice() float64 { return r.Price }

func (r RoundTrip) TotalDuration() int { return r.DurationMinutes }

// Combine cross-joins outbound and return itineraries, keeping only pairs
// whose return departs strictly after the outbound's final arrival. Either
// side empty yields an empty result.
func Combine(outbound, returning []Itinerary) []RoundTrip {
	var roundTrips []RoundTrip

	for _, out := range outbound {
		if len(out.Legs) == 0 {
			continue
		}

		lastArrival := out.Legs[len(out.Legs)-1].Arrival

		for _, ret := range returning {
			if len(ret.Legs) == 0 {
				continue
			}

			if !ret.Legs[0].Departure.After(lastArrival) {
				continue
			}

			roundTrips = append(roundTrips, RoundTrip{
				Outbound:        out,
				Return:          ret,
				Price:           out.Price + ret.Price,
				DurationMinutes: out.DurationMinutes + ret.DurationMinutes,
			})
		}
	}

	return roundTrips
}
