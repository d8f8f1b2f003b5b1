package itinerary

import "time"

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Leg is a single scheduled flight segment between two airports.
// It is owned by the catalogue; the search core only reads it.
type Leg struct {
	ID              string    `json:"id"`
	FlightNumber    string    `json:"flight_number"`
	Airline         Airline   `json:"airline"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	Departure       time.Time `json:"departure"`
	Arrival         time.Time `json:"arrival"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	SeatsAvailable  int       `json:"seats_available"`
}
