package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/flightdeck/itinerary-search-service/internal/pkg/exception"
	"github.com/flightdeck/itinerary-search-service/internal/pkg/itinerary"
	"github.com/flightdeck/itinerary-search-service/internal/pkg/utils"
)

const DateLayout = "2006-01-02"

// SearchRequest is the itinerary search query. ReturnDate switches the
// search into round-trip mode. Filter is free-form: anything other than
// "fastest" ranks by price.
type SearchRequest struct {
	Origin        string `json:"origin" validate:"required"`
	Destination   string `json:"destination" validate:"required"`
	DepartureDate string `json:"departure_date" validate:"required"`
	ReturnDate    string `json:"return_date,omitempty"`
	Filter        string `json:"filter,omitempty"`
}

func (s *SearchRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if s.Origin == s.Destination {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "origin and destination must differ",
		}
	}

	if _, err := time.Parse(DateLayout, s.DepartureDate); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("departure_date must use format %s", DateLayout),
		}
	}

	if s.ReturnDate != "" {
		returnDate, err := time.Parse(DateLayout, s.ReturnDate)
		if err != nil {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("return_date must use format %s", DateLayout),
			}
		}

		departureDate, _ := time.Parse(DateLayout, s.DepartureDate)
		if returnDate.Before(departureDate) {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    "return_date must not be before departure_date",
			}
		}
	}

	return nil
}

// BrowseRequest lists the whole catalogue as single-leg itineraries, the
// fallback behavior for callers with no search constraints.
type BrowseRequest struct {
	Filter string `json:"filter,omitempty"`
}

func (b *BrowseRequest) BindQuery(r *http.Request) error {
	b.Filter = r.URL.Query().Get("filter")

	return nil
}

type AirlineRequest struct {
	AirlineCode string `json:"airline_code" validate:"required"`
	Filter      string `json:"filter,omitempty"`
}

func (a *AirlineRequest) BindQuery(r *http.Request) error {
	a.AirlineCode = r.URL.Query().Get("airline_code")
	a.Filter = r.URL.Query().Get("filter")

	if err := ValidateSingleError(a); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type Duration struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Leg struct {
	ID             string   `json:"id"`
	FlightNumber   string   `json:"flight_number"`
	Airline        Airline  `json:"airline"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	Departure      string   `json:"departure"`
	Arrival        string   `json:"arrival"`
	Duration       Duration `json:"duration"`
	Price          Price    `json:"price"`
	SeatsAvailable int      `json:"seats_available"`
}

type Itinerary struct {
	Legs          []Leg    `json:"legs"`
	TotalPrice    Price    `json:"total_price"`
	TotalDuration Duration `json:"total_duration"`
}

type RoundTrip struct {
	Outbound      Itinerary `json:"outbound"`
	Return        Itinerary `json:"return"`
	TotalPrice    Price     `json:"total_price"`
	TotalDuration Duration  `json:"total_duration"`
}

type Metadata struct {
	TotalResults   int  `json:"total_results"`
	LegsConsidered int  `json:"legs_considered"`
	SearchTimeMs   int  `json:"search_time_ms"`
	CacheHit       bool `json:"cache_hit"`
}

// SearchResponse is the result envelope: one of the two sequences is
// populated depending on the search mode. Empty sequences are valid results,
// not errors.
type SearchResponse struct {
	SearchCriteria SearchRequest `json:"search_criteria"`
	Metadata       Metadata      `json:"metadata"`
	OneWay         []Itinerary   `json:"one_way,omitempty"`
	RoundTrip      []RoundTrip   `json:"round_trip,omitempty"`
}

type BrowseResponse struct {
	Metadata    Metadata    `json:"metadata"`
	Itineraries []Itinerary `json:"itineraries"`
}

type AirlineResponse struct {
	AirlineCode string `json:"airline_code"`
	Legs        []Leg  `json:"legs"`
}

func NewPrice(amount float64) Price {
	return Price{
		Amount:    amount,
		Currency:  "USD",
		Formatted: utils.FormatUSD(amount),
	}
}

func NewDuration(totalMinutes int) Duration {
	return Duration{
		TotalMinutes: totalMinutes,
		Formatted:    utils.ConvertMinutesToDuration(int64(totalMinutes)),
	}
}

func FromLeg(leg itinerary.Leg) Leg {
	return Leg{
		ID:           leg.ID,
		FlightNumber: leg.FlightNumber,
		Airline: Airline{
			Code: leg.Airline.Code,
			Name: leg.Airline.Name,
		},
		Origin:         leg.Origin,
		Destination:    leg.Destination,
		Departure:      leg.Departure.Format(time.RFC3339),
		Arrival:        leg.Arrival.Format(time.RFC3339),
		Duration:       NewDuration(leg.DurationMinutes),
		Price:          NewPrice(leg.Price),
		SeatsAvailable: leg.SeatsAvailable,
	}
}

func FromItinerary(itin itinerary.Itinerary) Itinerary {
	legs := make([]Leg, len(itin.Legs))
	for i, leg := range itin.Legs {
		legs[i] = FromLeg(leg)
	}

	return Itinerary{
		Legs:          legs,
		TotalPrice:    NewPrice(itin.Price),
		TotalDuration: NewDuration(itin.DurationMinutes),
	}
}

func FromItineraries(itins []itinerary.Itinerary) []Itinerary {
	results := make([]Itinerary, len(itins))
	for i, itin := range itins {
		results[i] = FromItinerary(itin)
	}

	return results
}

func FromRoundTrips(roundTrips []itinerary.RoundTrip) []RoundTrip {
	results := make([]RoundTrip, len(roundTrips))
	for i, rt := range roundTrips {
		results[i] = RoundTrip{
			Outbound:      FromItinerary(rt.Outbound),
			Return:        FromItinerary(rt.Return),
			TotalPrice:    NewPrice(rt.Price),
			TotalDuration: NewDuration(rt.DurationMinutes),
		}
	}

	return results
}
