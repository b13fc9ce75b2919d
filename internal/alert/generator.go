package alert

import (
	"sort"
	"time"

	"HarvestGuard/internal/advisory"
	"HarvestGuard/internal/crop"
	"HarvestGuard/internal/model"
	"HarvestGuard/internal/risk"
)

// Generator produces one SmartAlert per active batch.
type Generator struct {
	Profiles *crop.Table
	Composer *advisory.Composer
	Now      func() time.Time
}

// NewGenerator creates a Generator stamping alerts with the wall clock.
func NewGenerator(profiles *crop.Table, composer *advisory.Composer) *Generator {
	return &Generator{Profiles: profiles, Composer: composer, Now: time.Now}
}

// GenerateAlert scores a single batch and composes its advisory.
func (g *Generator) GenerateAlert(b model.StorageBatch, w model.WeatherObservation) model.SmartAlert {
	profile := g.Profiles.Resolve(b.CropType)
	assessment := risk.Score(w, profile, b)
	message := g.Composer.Compose(w, profile, b, assessment.RiskLevel, assessment.Factors)

	return model.SmartAlert{
		BatchID:        b.ID,
		RiskLevel:      assessment.RiskLevel,
		Score:          assessment.Score,
		Message:        message,
		CropType:       b.CropType,
		ActionRequired: assessment.RiskLevel == model.RiskCritical || assessment.RiskLevel == model.RiskHigh,
		Factors:        g.Composer.Templates().Factors(assessment.Factors),
		Timestamp:      g.Now(),
	}
}

// GenerateAlerts evaluates every active batch in input order. Sold and lost
// batches are skipped.
func (g *Generator) GenerateAlerts(batches []model.StorageBatch, w model.WeatherObservation) []model.SmartAlert {
	alerts := make([]model.SmartAlert, 0, len(batches))
	for _, b := range batches {
		if !b.IsActive() {
			continue
		}
		alerts = append(alerts, g.GenerateAlert(b, w))
	}
	return alerts
}

// HasCriticalAlert reports whether any alert is critical.
func HasCriticalAlert(alerts []model.SmartAlert) bool {
	for _, a := range alerts {
		if a.RiskLevel == model.RiskCritical {
			return true
		}
	}
	return false
}

// SortBySeverity returns a copy ordered critical first, keeping input order within a level.
func SortBySeverity(alerts []model.SmartAlert) []model.SmartAlert {
	sorted := append([]model.SmartAlert(nil), alerts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RiskLevel.Severity() > sorted[j].RiskLevel.Severity()
	})
	return sorted
}

// CountByLevel tallies alerts per risk level.
func CountByLevel(alerts []model.SmartAlert) map[model.RiskLevel]int {
	counts := make(map[model.RiskLevel]int, 4)
	for _, a := range alerts {
		counts[a.RiskLevel]++
	}
	return counts
}
