package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"HarvestGuard/internal/model"
)

// ErrEmptyForecast is returned when the forecast has no entries.
var ErrEmptyForecast = errors.New("forecast has no entries")

// Narratives attached to fetched observations.
const (
	NarrativeRainImminent = "আসন্ন বৃষ্টির ঝুঁকি খুব বেশি। ফসল দ্রুত উঠিয়ে ফেলুন অথবা ঢেকে রাখুন।"
	NarrativeFavorable    = "আবহাওয়া তুলনামূলক অনুকূলে রয়েছে। পর্যবেক্ষণ চালিয়ে যান।"
)

// forecastWindow is the number of 3-hour forecast slots averaged for rain (24h).
const forecastWindow = 8

// OpenWeatherFetcher implements Fetcher using the OpenWeatherMap forecast API.
type OpenWeatherFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewOpenWeatherFetcher creates a fetcher with optional proxy support.
func NewOpenWeatherFetcher(apiKey, proxyURL string) *OpenWeatherFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &OpenWeatherFetcher{
		BaseURL: "https://api.openweathermap.org",
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (f *OpenWeatherFetcher) Name() string { return "openweathermap" }

type forecastEntry struct {
	Pop  *float64 `json:"pop"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
}

type forecastPayload struct {
	List []forecastEntry `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

type reverseGeo struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	State   string `json:"state"`
}

// apiError is the error body OpenWeatherMap returns. cod is a string or a number.
type apiError struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

// Fetch resolves a place name, then summarizes the next 24h of forecast.
func (f *OpenWeatherFetcher) Fetch(ctx context.Context, at Coordinates) (model.WeatherObservation, error) {
	city, country := f.reverseGeocode(ctx, at)

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", at.Latitude))
	q.Set("lon", fmt.Sprintf("%f", at.Longitude))
	q.Set("units", "metric")
	q.Set("appid", f.APIKey)

	var payload forecastPayload
	if err := f.getJSON(ctx, "/data/2.5/forecast?"+q.Encode(), &payload); err != nil {
		return model.WeatherObservation{}, err
	}
	if len(payload.List) == 0 {
		return model.WeatherObservation{}, ErrEmptyForecast
	}

	first := payload.List[0]
	rain := rainProbability(payload.List)

	location := fmt.Sprintf("%s, %s", payload.City.Name, payload.City.Country)
	if city != "" {
		location = city
		if country != "" {
			location += ", " + country
		}
	}

	narrative := NarrativeFavorable
	if rain > 70 {
		narrative = NarrativeRainImminent
	}

	return model.WeatherObservation{
		Location:               location,
		TemperatureC:           math.Round(first.Main.Temp),
		HumidityPercent:        first.Main.Humidity,
		RainProbabilityPercent: rain,
		Narrative:              narrative,
		ObservedAt:             time.Now(),
	}, nil
}

// rainProbability averages precipitation probability over the first 24h.
// The divisor is fixed so short forecasts read as drier.
func rainProbability(list []forecastEntry) float64 {
	sum := 0.0
	for i, e := range list {
		if i == forecastWindow {
			break
		}
		if e.Pop != nil {
			sum += *e.Pop
		}
	}
	return math.Round(sum / forecastWindow * 100)
}

// reverseGeocode returns "", "" when no place name is available.
func (f *OpenWeatherFetcher) reverseGeocode(ctx context.Context, at Coordinates) (string, string) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", at.Latitude))
	q.Set("lon", fmt.Sprintf("%f", at.Longitude))
	q.Set("limit", "1")
	q.Set("appid", f.APIKey)

	var places []reverseGeo
	if err := f.getJSON(ctx, "/geo/1.0/reverse?"+q.Encode(), &places); err != nil {
		return "", ""
	}
	if len(places) == 0 || places[0].Name == "" {
		return "", ""
	}
	return places[0].Name, places[0].Country
}

func (f *OpenWeatherFetcher) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(describeError(resp, body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func describeError(resp *http.Response, body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return fmt.Sprintf("Weather API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	cod := string(apiErr.Cod)
	if len(cod) >= 2 && cod[0] == '"' {
		cod = cod[1 : len(cod)-1]
	}
	switch cod {
	case "401":
		return "Invalid API key. Please check your OpenWeatherMap API key."
	case "429":
		return "API rate limit exceeded. Please try again later."
	case "404":
		return "Weather data not found for this location."
	case "":
		return "Weather request failed"
	default:
		return "API error: " + cod
	}
}
