package model

import (
	"fmt"
	"time"
)

// RiskLevel is the severity of a batch's exposure.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Severity orders risk levels: low=0 ... critical=3.
func (l RiskLevel) Severity() int {
	switch l {
	case RiskCritical:
		return 3
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// ParseRiskLevel validates s against the closed set.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch l := RiskLevel(s); l {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return l, nil
	}
	return "", fmt.Errorf("unknown risk level %q", s)
}

// FactorKind names a condition that contributed to a risk score.
type FactorKind string

const (
	FactorHumidityOverThreshold FactorKind = "humidity_over_threshold"
	FactorHumidityNearThreshold FactorKind = "humidity_near_threshold"
	FactorRainProbability       FactorKind = "rain_probability"
	FactorTemperatureExtreme    FactorKind = "temperature_extreme"
	FactorBagStorage            FactorKind = "bag_storage"
)

// Factor records one contributing condition with the values that triggered it.
type Factor struct {
	Kind   FactorKind `json:"kind"`
	Points int        `json:"points"`
	Value  float64    `json:"value,omitempty"`
	Limit  float64    `json:"limit,omitempty"` // humidity threshold
	Min    float64    `json:"min,omitempty"`   // temperature band
	Max    float64    `json:"max,omitempty"`
}

// RiskAssessment is the scorer's output for one batch.
type RiskAssessment struct {
	Score     int
	RiskLevel RiskLevel
	Factors   []Factor

	// RainExposure is rain probability weighted by the crop's rain
	// sensitivity. Diagnostic only; it does not contribute to Score.
	RainExposure float64
}

// SmartAlert is the per-batch advisory handed to the notification layer.
type SmartAlert struct {
	BatchID        string    `json:"batchId"`
	RiskLevel      RiskLevel `json:"riskLevel"`
	Score          int       `json:"score"`
	Message        string    `json:"message"`
	CropType       string    `json:"cropType"`
	ActionRequired bool      `json:"actionRequired"`
	Factors        []string  `json:"factors,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Key identifies an alert for notification dedup.
func (a SmartAlert) Key() string {
	return a.CropType + "-" + a.Timestamp.UTC().Format(time.RFC3339Nano)
}
