package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/flightdeck/itinerary-search-service/internal/pkg/itinerary"
	"github.com/go-redis/redis_rate/v10"
)

// Config for the catalogue source. The snapshot path routes to the inventory
// feed export consumed in place of the upstream inventory API.
type Config struct {
	SnapshotPath string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// FileSource reads the full leg catalogue from an inventory feed export.
// Fetches are rate limited so a burst of cache misses cannot hammer the
// feed, and transient read failures are retried with exponential backoff.
type FileSource struct {
	SnapshotPath string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

func NewFileSource(config Config) *FileSource {
	return &FileSource{
		SnapshotPath: config.SnapshotPath,
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		RateLimitRPS: config.RateLimitRPS,
		Limiter:      config.Limiter,
	}
}

func (s *FileSource) FetchAllLegs(ctx context.Context) ([]itinerary.Leg, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	if s.Limiter != nil && s.RateLimitRPS > 0 {
		res, err := s.Limiter.Allow(ctx, "limit:catalogue", redis_rate.PerSecond(s.RateLimitRPS))
		if err != nil {
			return nil, fmt.Errorf("failed to rate limit catalogue fetch: %w", err)
		}

		if res.Allowed == 0 {
			return nil, ErrUnavailable
		}
	}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		legs, err := s.readSnapshot()
		if err == nil {
			return legs, nil
		}

		lastErr = err
		slog.WarnContext(ctx, "failed to read catalogue snapshot",
			slog.Int("attempt", attempt+1), slog.String("error", err.Error()))

		if attempt < s.MaxRetries {
			// Exponential backoff: 200ms * 2^attempt
			backoff := time.Duration(200*(1<<attempt)) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("catalogue snapshot unreadable after %d attempts: %w", s.MaxRetries+1, lastErr)
}

func (s *FileSource) FetchLegsByRoute(ctx context.Context, origin, destination string,
	from, to time.Time,
) ([]itinerary.Leg, error) {
	legs, err := s.FetchAllLegs(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]itinerary.Leg, 0, len(legs))

	for _, leg := range legs {
		if leg.Origin != origin || leg.Destination != destination {
			continue
		}

		if leg.Departure.Before(from) || leg.Departure.After(to) {
			continue
		}

		results = append(results, leg)
	}

	return results, nil
}

type snapshotFile struct {
	Data struct {
		Legs []snapshotLeg `json:"legs"`
	} `json:"data"`
}

type snapshotLeg struct {
	ID              string  `json:"id"`
	FlightNumber    string  `json:"flight_number"`
	AirlineCode     string  `json:"airline_code"`
	AirlineName     string  `json:"airline_name"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	Departure       string  `json:"departure"`
	Arrival         string  `json:"arrival"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	SeatsAvailable  int     `json:"seats_available"`
}

func (s *FileSource) readSnapshot() ([]itinerary.Leg, error) {
	raw, err := os.ReadFile(s.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshot snapshotFile
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot file: %w", err)
	}

	legs := make([]itinerary.Leg, 0, len(snapshot.Data.Legs))

	for _, entry := range snapshot.Data.Legs {
		departure, err := time.Parse(time.RFC3339, entry.Departure)
		if err != nil {
			return nil, fmt.Errorf("leg %s: bad departure timestamp: %w", entry.ID, err)
		}

		arrival, err := time.Parse(time.RFC3339, entry.Arrival)
		if err != nil {
			return nil, fmt.Errorf("leg %s: bad arrival timestamp: %w", entry.ID, err)
		}

		legs = append(legs, itinerary.Leg{
			ID:           entry.ID,
			FlightNumber: entry.FlightNumber,
			Airline: itinerary.Airline{
				Code: entry.AirlineCode,
				Name: entry.AirlineName,
			},
			Origin:          entry.Origin,
			Destination:     entry.Destination,
			Departure:       departure,
			Arrival:         arrival,
			DurationMinutes: entry.DurationMinutes,
			Price:           entry.Price,
			SeatsAvailable:  entry.SeatsAvailable,
		})
	}

	return legs, nil
}
