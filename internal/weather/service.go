package weather

import (
	"context"
	"log"
	"strings"
	"time"

	"HarvestGuard/internal/model"
)

const placeholderAPIKey = "your_openweathermap_api_key"

// FallbackObservation is served when no live observation is available.
func FallbackObservation() model.WeatherObservation {
	return model.WeatherObservation{
		Location:               "Dhaka, BD",
		TemperatureC:           31,
		HumidityPercent:        78,
		RainProbabilityPercent: 40,
		Narrative:              "আবহাওয়া শান্ত থাকলেও আর্দ্রতা বেশি। ফসল ঢেকে রাখুন এবং স্টোরেজ খোলা রাখুন।",
		IsFallback:             true,
	}
}

// Service always yields an observation, degrading to the fallback report.
type Service struct {
	Fetcher Fetcher
	Now     func() time.Time
}

// NewService wraps fetcher. A nil fetcher serves the fallback report only.
func NewService(fetcher Fetcher) *Service {
	return &Service{Fetcher: fetcher, Now: time.Now}
}

// NewServiceFromKey picks the OpenWeatherMap fetcher when apiKey looks usable.
func NewServiceFromKey(apiKey, proxyURL string) *Service {
	if !UsableAPIKey(apiKey) {
		log.Println("[WARN] missing or invalid OPENWEATHER_API_KEY, using fallback weather data")
		return NewService(nil)
	}
	return NewService(NewOpenWeatherFetcher(strings.TrimSpace(apiKey), proxyURL))
}

// UsableAPIKey rejects empty, placeholder and obviously truncated keys.
func UsableAPIKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != placeholderAPIKey && len(key) >= 10
}

// Observe returns the current observation at coordinates. Fetch errors are
// logged and reported through the fallback's narrative.
func (s *Service) Observe(ctx context.Context, at Coordinates) model.WeatherObservation {
	if s.Fetcher == nil {
		return s.stamp(FallbackObservation())
	}
	obs, err := s.Fetcher.Fetch(ctx, at)
	if err != nil {
		log.Printf("[ERROR] weather fetch (%s): %v", s.Fetcher.Name(), err)
		fb := FallbackObservation()
		fb.Narrative = err.Error()
		return s.stamp(fb)
	}
	return s.stamp(obs)
}

// ObserveDistrict resolves a district name and observes its center.
func (s *Service) ObserveDistrict(ctx context.Context, district string) model.WeatherObservation {
	d := LookupDistrict(district)
	return s.Observe(ctx, Coordinates{Latitude: d.Latitude, Longitude: d.Longitude})
}

func (s *Service) stamp(obs model.WeatherObservation) model.WeatherObservation {
	if obs.ObservedAt.IsZero() {
		obs.ObservedAt = s.Now()
	}
	return obs
}
