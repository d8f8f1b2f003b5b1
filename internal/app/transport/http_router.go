package transport

import (
	"log/slog"
	"net/http"

	"github.com/flightdeck/itinerary-search-service/internal/app/config"
	"github.com/flightdeck/itinerary-search-service/internal/app/dto"
	"github.com/flightdeck/itinerary-search-service/internal/app/endpoints"
	httptransport "github.com/flightdeck/itinerary-search-service/internal/pkg/transport/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/itineraries", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.SearchItineraries,
			httptransport.DecodeRequest[dto.SearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.BrowseItineraries,
			httptransport.DecodeQueryRequest[dto.BrowseRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/airline", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.ListByAirline,
			httptransport.DecodeQueryRequest[dto.AirlineRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
