package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/flightdeck/itinerary-search-service/internal/app/dto"
	"github.com/flightdeck/itinerary-search-service/internal/pkg/catalogue"
	"github.com/flightdeck/itinerary-search-service/internal/pkg/exception"
	"github.com/flightdeck/itinerary-search-service/internal/pkg/itinerary"
)

type SnapshotCacher interface {
	GetLockKey() string
	GetCacheKey() string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetLegs(ctx context.Context, key string) ([]itinerary.Leg, error)
	SetLegs(ctx context.Context, key string, legs []itinerary.Leg, expiration time.Duration) error
}

// SearchService is the search facade: it validates queries, fetches a
// catalogue snapshot once per search and runs the enumeration pipeline over
// it. Searches share no mutable state, so one service instance serves
// concurrent requests.
type SearchService struct {
	Catalogue               catalogue.Accessor
	Cache                   SnapshotCacher
	Policy                  itinerary.Policy
	SnapshotCacheExpiration time.Duration
	SnapshotLockTimeout     time.Duration
}

func NewSearchService(accessor catalogue.Accessor, cache SnapshotCacher,
	policy itinerary.Policy, snapshotCacheExpiration time.Duration,
	snapshotLockTimeout time.Duration) *SearchService {
	return &SearchService{
		Catalogue:               accessor,
		Cache:                   cache,
		Policy:                  policy,
		SnapshotCacheExpiration: snapshotCacheExpiration,
		SnapshotLockTimeout:     snapshotLockTimeout,
	}
}

// SearchItineraries finds ranked itineraries between two airports.
// SearchItineraries godoc
// @Summary      Search itineraries
// @Tags         Itineraries
// @Description  Search one-way or round-trip itineraries between two airports
// @Param        request  body      dto.SearchRequest  true  "Search Query"
// @Success      200      {object}  dto.SearchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/itineraries/search [post]
func (s *SearchService) SearchItineraries(
	ctx context.Context,
	req dto.SearchRequest,
) (dto.SearchResponse, error) {
	startTime := time.Now()

	departureDate, err := time.Parse(dto.DateLayout, req.DepartureDate)
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("parse departure date: %w", ErrInvalidQuery)
	}

	legs, cacheHit, err := s.snapshot(ctx)
	if err != nil {
		return dto.SearchResponse{}, err
	}

	enumerator := itinerary.NewEnumerator(s.Policy)

	outbound, err := s.findItineraries(ctx, enumerator, legs, req.Origin, req.Destination, departureDate)
	if err != nil {
		return dto.SearchResponse{}, err
	}

	response := dto.SearchResponse{
		SearchCriteria: req,
		Metadata: dto.Metadata{
			LegsConsidered: len(legs),
			CacheHit:       cacheHit,
		},
	}

	if req.ReturnDate == "" {
		itinerary.Rank(outbound, req.Filter)
		response.OneWay = dto.FromItineraries(outbound)
		response.Metadata.TotalResults = len(response.OneWay)
	} else {
		returnDate, err := time.Parse(dto.DateLayout, req.ReturnDate)
		if err != nil {
			return dto.SearchResponse{}, fmt.Errorf("parse return date: %w", ErrInvalidQuery)
		}

		returning, err := s.findItineraries(ctx, enumerator, legs, req.Destination, req.Origin, returnDate)
		if err != nil {
			return dto.SearchResponse{}, err
		}

		roundTrips := itinerary.Combine(outbound, returning)
		itinerary.Rank(roundTrips, req.Filter)
		response.RoundTrip = dto.FromRoundTrips(roundTrips)
		response.Metadata.TotalResults = len(response.RoundTrip)
	}

	response.Metadata.SearchTimeMs = int(time.Since(startTime).Milliseconds())

	return response, nil
}

// BrowseItineraries lists every catalogue leg as its own one-way itinerary.
// This is the degraded mode for callers with no search constraints.
// BrowseItineraries godoc
// @Summary      Browse catalogue
// @Tags         Itineraries
// @Description  List every catalogue leg as a single-leg itinerary
// @Param        filter  query     string  false  "cheapest or fastest"
// @Success      200     {object}  dto.BrowseResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/v1/itineraries [get]
func (s *SearchService) BrowseItineraries(
	ctx context.Context,
	req dto.BrowseRequest,
) (dto.BrowseResponse, error) {
	startTime := time.Now()

	legs, cacheHit, err := s.snapshot(ctx)
	if err != nil {
		return dto.BrowseResponse{}, err
	}

	itineraries := make([]itinerary.Itinerary, len(legs))
	for i, leg := range legs {
		itineraries[i] = itinerary.Assemble([]itinerary.Leg{leg})
	}

	itinerary.Rank(itineraries, req.Filter)

	return dto.BrowseResponse{
		Metadata: dto.Metadata{
			TotalResults:   len(itineraries),
			LegsConsidered: len(legs),
			SearchTimeMs:   int(time.Since(startTime).Milliseconds()),
			CacheHit:       cacheHit,
		},
		Itineraries: dto.FromItineraries(itineraries),
	}, nil
}

// ListByAirline returns one airline's legs ordered by the filter criterion.
func (s *SearchService) ListByAirline(
	ctx context.Context,
	req dto.AirlineRequest,
) (dto.AirlineResponse, error) {
	legs, _, err := s.snapshot(ctx)
	if err != nil {
		return dto.AirlineResponse{}, err
	}

	var matched []itinerary.Itinerary
	for _, leg := range legs {
		if leg.Airline.Code != req.AirlineCode {
			continue
		}

		matched = append(matched, itinerary.Assemble([]itinerary.Leg{leg}))
	}

	itinerary.Rank(matched, req.Filter)

	results := make([]dto.Leg, len(matched))
	for i, itin := range matched {
		results[i] = dto.FromLeg(itin.Legs[0])
	}

	return dto.AirlineResponse{
		AirlineCode: req.AirlineCode,
		Legs:        results,
	}, nil
}

func (s *SearchService) findItineraries(ctx context.Context, enumerator *itinerary.Enumerator,
	legs []itinerary.Leg, origin, destination string, date time.Time,
) ([]itinerary.Itinerary, error) {
	graph := itinerary.BuildGraph(legs, date)

	paths, err := enumerator.Enumerate(ctx, graph, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s to %s: %w", origin, destination, err)
	}

	return itinerary.AssembleAll(paths), nil
}

// snapshot returns the catalogue legs through a cache-aside read. Only one
// concurrent cache miss populates the cache; the rest serve directly from
// the source. Cache failures degrade to source reads instead of failing the
// search, since only the catalogue itself is load-bearing.
func (s *SearchService) snapshot(ctx context.Context) ([]itinerary.Leg, bool, error) {
	cacheKey := s.Cache.GetCacheKey()
	lockKey := s.Cache.GetLockKey()

	legs, err := s.Cache.GetLegs(ctx, cacheKey)
	if err == nil {
		return legs, true, nil
	}

	slog.DebugContext(ctx, "catalogue snapshot cache miss", slog.String("error", err.Error()))

	legs, err = s.Catalogue.FetchAllLegs(ctx)
	if err != nil {
		return nil, false, exception.ApplicationError{
			Message:    "flight catalogue unavailable",
			StatusCode: http.StatusBadGateway,
			Cause:      err,
		}
	}

	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.SnapshotLockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire snapshot lock", slog.String("error", err.Error()))

		return legs, false, nil
	}

	if acquired {
		defer s.Cache.ReleaseLock(ctx, lockKey)

		if err := s.Cache.SetLegs(ctx, cacheKey, legs, s.SnapshotCacheExpiration); err != nil {
			slog.WarnContext(ctx, "failed to store catalogue snapshot", slog.String("error", err.Error()))
		}
	}

	return legs, false, nil
}
