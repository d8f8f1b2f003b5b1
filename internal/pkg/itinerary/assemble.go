package itinerary

const (
	// discountPerExtraLeg is the multiplier reduction applied for every leg
	// beyond the first; discountFloor caps the total reduction. Both are
	// pricing policy and must not change without a fare review.
	discountPerExtraLeg = 0.5
	discountFloor       = 0.5
)

// Itinerary is an ordered chain of legs forming one directed trip. Price is
// the post-discount total; DurationMinutes sums flight time only, layover
// gaps excluded.
type Itinerary struct {
	Legs            []Leg   `json:"legs"`
	Price           float64 `json:"total_price"`
	DurationMinutes int     `json:"total_duration_minutes"`
}

func (i Itinerary) TotalPrice() float64 { return i.Price }

func (i Itinerary) TotalDuration() int { return i.DurationMinutes }

// Assemble builds an itinerary from a leg sequence, applying the leg-count
// discount to the summed base price. An empty sequence yields zero totals.
func Assemble(legs []Leg) Itinerary {
	var (
		basePrice float64
		duration  int
	)

	for _, leg := range legs {
		basePrice += leg.Price
		duration += leg.DurationMinutes
	}

	return Itinerary{
		Legs:            legs,
		Price:           basePrice * discountFactor(len(legs)),
		DurationMinutes: duration,
	}
}

// AssembleAll converts every enumerated leg sequence into an itinerary,
// preserving generation order.
func AssembleAll(sequences [][]Leg) []Itinerary {
	itineraries := make([]Itinerary, len(sequences))
	for i, legs := range sequences {
		itineraries[i] = Assemble(legs)
	}

	return itineraries
}

// discountFactor returns 1.0 for a single leg and shrinks by
// discountPerExtraLeg per additional leg, floored at discountFloor.
func discountFactor(numberOfLegs int) float64 {
	if numberOfLegs <= 1 {
		return 1.0
	}

	factor := 1.0 - discountPerExtraLeg*float64(numberOfLegs-1)
	if factor < discountFloor {
		return discountFloor
	}

	return factor
}
