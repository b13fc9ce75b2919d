package model

import "time"

// WeatherObservation is a point-in-time weather snapshot for one location.
type WeatherObservation struct {
	Location               string    `json:"location"`
	TemperatureC           float64   `json:"temperature"`
	HumidityPercent        float64   `json:"humidity"`
	RainProbabilityPercent float64   `json:"rainProbability"`
	Narrative              string    `json:"narrative"`
	IsFallback             bool      `json:"isFallback,omitempty"`
	ObservedAt             time.Time `json:"observedAt,omitempty"`
}
