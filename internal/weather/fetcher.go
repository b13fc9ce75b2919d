package weather

import (
	"context"

	"HarvestGuard/internal/model"
)

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fetcher defines the interface for fetching a weather observation.
type Fetcher interface {
	Fetch(ctx context.Context, at Coordinates) (model.WeatherObservation, error)
	Name() string
}

// MockFetcher returns a fixed observation for development and testing.
type MockFetcher struct {
	Observation model.WeatherObservation
	Err         error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(_ context.Context, _ Coordinates) (model.WeatherObservation, error) {
	if m.Err != nil {
		return model.WeatherObservation{}, m.Err
	}
	return m.Observation, nil
}
