package risk

import "HarvestGuard/internal/model"

// Thresholds shared with the advisory composer.
const (
	HumidityWatchMargin = 10.0
	RainSevere          = 70.0
	RainLikely          = 50.0
	RainPossible        = 30.0
	TemperatureExtreme  = 5.0
	TemperatureDrift    = 2.0
)

// HumidityOver reports humidity strictly above the crop threshold.
func HumidityOver(w model.WeatherObservation, p model.CropProfile) bool {
	return w.HumidityPercent > p.HumidityThresholdPercent
}

// HumidityNear reports humidity within the watch margin below the threshold (or above it).
func HumidityNear(w model.WeatherObservation, p model.CropProfile) bool {
	return w.HumidityPercent > p.HumidityThresholdPercent-HumidityWatchMargin
}

// OutsideBand reports temperature more than margin degrees outside the optimal band.
func OutsideBand(w model.WeatherObservation, p model.CropProfile, margin float64) bool {
	r := p.TemperatureRange
	return w.TemperatureC < r.Min-margin || w.TemperatureC > r.Max+margin
}

// scoreHumidity: +40 above threshold, +20 within 10 points of it.
func scoreHumidity(w model.WeatherObservation, p model.CropProfile, _ model.StorageBatch) (int, *model.Factor) {
	switch {
	case HumidityOver(w, p):
		return 40, &model.Factor{Kind: model.FactorHumidityOverThreshold, Points: 40,
			Value: w.HumidityPercent, Limit: p.HumidityThresholdPercent}
	case HumidityNear(w, p):
		return 20, &model.Factor{Kind: model.FactorHumidityNearThreshold, Points: 20,
			Value: w.HumidityPercent, Limit: p.HumidityThresholdPercent}
	default:
		return 0, nil
	}
}

// scoreRain: tiered, highest tier wins. The lowest tier records no factor.
func scoreRain(w model.WeatherObservation, _ model.CropProfile, _ model.StorageBatch) (int, *model.Factor) {
	rain := w.RainProbabilityPercent
	switch {
	case rain >= RainSevere:
		return 50, &model.Factor{Kind: model.FactorRainProbability, Points: 50, Value: rain}
	case rain >= RainLikely:
		return 30, &model.Factor{Kind: model.FactorRainProbability, Points: 30, Value: rain}
	case rain >= RainPossible:
		return 15, nil
	default:
		return 0, nil
	}
}

// scoreTemperature: +30 beyond 5 degrees outside the band, +15 beyond 2 (no factor).
func scoreTemperature(w model.WeatherObservation, p model.CropProfile, _ model.StorageBatch) (int, *model.Factor) {
	switch {
	case OutsideBand(w, p, TemperatureExtreme):
		return 30, &model.Factor{Kind: model.FactorTemperatureExtreme, Points: 30,
			Value: w.TemperatureC, Min: p.TemperatureRange.Min, Max: p.TemperatureRange.Max}
	case OutsideBand(w, p, TemperatureDrift):
		return 15, nil
	default:
		return 0, nil
	}
}

// scoreStorage: bags are exposed to rain, silos are not.
func scoreStorage(_ model.WeatherObservation, _ model.CropProfile, b model.StorageBatch) (int, *model.Factor) {
	switch b.StorageType {
	case model.StorageBag:
		return 10, &model.Factor{Kind: model.FactorBagStorage, Points: 10}
	case model.StorageSilo:
		return 0, nil
	default:
		return 0, nil
	}
}
