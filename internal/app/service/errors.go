package service

import (
	"net/http"

	"github.com/flightdeck/itinerary-search-service/internal/pkg/exception"
)

var ErrInvalidQuery = exception.ApplicationError{
	Message:    "origin, destination and departure date are required",
	StatusCode: http.StatusBadRequest,
}
