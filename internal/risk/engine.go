package risk

import "HarvestGuard/internal/model"

// Levels maps a total score to a risk level, checked top-down.
var Levels = []struct {
	MinScore int
	Level    model.RiskLevel
}{
	{80, model.RiskCritical},
	{60, model.RiskHigh},
	{40, model.RiskMedium},
}

// Classify maps a total score to a RiskLevel.
func Classify(score int) model.RiskLevel {
	for _, l := range Levels {
		if score >= l.MinScore {
			return l.Level
		}
	}
	return model.RiskLow
}

// Score computes the additive risk score of a batch under the given weather.
// Every rule contributes independently.
func Score(w model.WeatherObservation, p model.CropProfile, b model.StorageBatch) model.RiskAssessment {
	var (
		total   int
		factors []model.Factor
	)
	for _, rule := range []func(model.WeatherObservation, model.CropProfile, model.StorageBatch) (int, *model.Factor){
		scoreHumidity,
		scoreRain,
		scoreTemperature,
		scoreStorage,
	} {
		points, f := rule(w, p, b)
		total += points
		if f != nil {
			factors = append(factors, *f)
		}
	}

	return model.RiskAssessment{
		Score:     total,
		RiskLevel: Classify(total),
		Factors:   factors,
		// Computed for diagnostics, never added to total.
		RainExposure: w.RainProbabilityPercent * p.RainSensitivity.Multiplier(),
	}
}
