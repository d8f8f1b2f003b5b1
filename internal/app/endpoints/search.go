package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/flightdeck/itinerary-search-service/internal/app/dto"
	"github.com/go-kit/kit/endpoint"
)

type SearchService interface {
	SearchItineraries(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	BrowseItineraries(ctx context.Context, req dto.BrowseRequest) (dto.BrowseResponse, error)
	ListByAirline(ctx context.Context, req dto.AirlineRequest) (dto.AirlineResponse, error)
}

type SearchEndpoint struct {
	SearchItineraries endpoint.Endpoint
	BrowseItineraries endpoint.Endpoint
	ListByAirline     endpoint.Endpoint
}

type Endpoints struct {
	SearchEndpoint SearchEndpoint
}

func MakeSearchEndpoint(service SearchService) SearchEndpoint {
	return SearchEndpoint{
		SearchItineraries: makeSearchItinerariesEndpoint(service),
		BrowseItineraries: makeBrowseItinerariesEndpoint(service),
		ListByAirline:     makeListByAirlineEndpoint(service),
	}
}

func makeSearchItinerariesEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchItineraries(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return response, nil
	}
}

func makeBrowseItinerariesEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.BrowseRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.BrowseItineraries(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return response, nil
	}
}

func makeListByAirlineEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.AirlineRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.ListByAirline(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return response, nil
	}
}
