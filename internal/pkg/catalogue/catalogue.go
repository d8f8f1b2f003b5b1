package catalogue

import (
	"context"
	"net/http"
	"time"

	"github.com/flightdeck/itinerary-search-service/internal/pkg/exception"
	"github.com/flightdeck/itinerary-search-service/internal/pkg/itinerary"
)

// Accessor supplies the flight leg catalogue. Results are a snapshot: the
// search core treats them as immutable for the duration of one search and
// never issues mutation calls.
type Accessor interface {
	FetchAllLegs(ctx context.Context) ([]itinerary.Leg, error)
	FetchLegsByRoute(ctx context.Context, origin, destination string,
		from, to time.Time) ([]itinerary.Leg, error)
}

var ErrUnavailable = exception.ApplicationError{
	Message:    "flight catalogue unavailable",
	StatusCode: http.StatusBadGateway,
}
