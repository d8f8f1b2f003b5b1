package service

import (
	"context"
	"testing"
	"time"

	"github.com/flightdeck/itinerary-search-service/internal/pkg/itinerary"
	"github.com/stretchr/testify/mock"
)

type MockSnapshotCacher struct {
	mock.Mock
}

func NewMockSnapshotCacher(t *testing.T) *MockSnapshotCacher {
	m := &MockSnapshotCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSnapshotCacher) GetLockKey() string {
	return m.Called().String(0)
}

func (m *MockSnapshotCacher) GetCacheKey() string {
	return m.Called().String(0)
}

func (m *MockSnapshotCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	args := m.Called(ctx, key, timeout)

	return args.Bool(0), args.Error(1)
}

func (m *MockSnapshotCacher) ReleaseLock(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockSnapshotCacher) GetLegs(ctx context.Context, key string) ([]itinerary.Leg, error) {
	args := m.Called(ctx, key)

	var legs []itinerary.Leg
	if args.Get(0) != nil {
		legs = args.Get(0).([]itinerary.Leg)
	}

	return legs, args.Error(1)
}

func (m *MockSnapshotCacher) SetLegs(ctx context.Context, key string, legs []itinerary.Leg, expiration time.Duration) error {
	return m.Called(ctx, key, legs, expiration).Error(0)
}

type MockAccessor struct {
	mock.Mock
}

func NewMockAccessor(t *testing.T) *MockAccessor {
	m := &MockAccessor{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccessor) FetchAllLegs(ctx context.Context) ([]itinerary.Leg, error) {
	args := m.Called(ctx)

	var legs []itinerary.Leg
	if args.Get(0) != nil {
		legs = args.Get(0).([]itinerary.Leg)
	}

	return legs, args.Error(1)
}

func (m *MockAccessor) FetchLegsByRoute(ctx context.Context, origin, destination string,
	from, to time.Time,
) ([]itinerary.Leg, error) {
	args := m.Called(ctx, origin, destination, from, to)

	var legs []itinerary.Leg
	if args.Get(0) != nil {
		legs = args.Get(0).([]itinerary.Leg)
	}

	return legs, args.Error(1)
}
