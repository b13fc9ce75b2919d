package risk

import (
	"reflect"
	"testing"

	"HarvestGuard/internal/crop"
	"HarvestGuard/internal/model"
)

func weather(temp, humidity, rain float64) model.WeatherObservation {
	return model.WeatherObservation{Location: "Dhaka, BD", TemperatureC: temp, HumidityPercent: humidity, RainProbabilityPercent: rain}
}

func batch(cropType string, st model.StorageType) model.StorageBatch {
	return model.StorageBatch{ID: "b1", CropType: cropType, WeightKg: 500, StorageType: st, Status: model.StatusActive, HarvestDate: "2026-10-01"}
}

func kinds(fs []model.Factor) []model.FactorKind {
	var out []model.FactorKind
	for _, f := range fs {
		out = append(out, f.Kind)
	}
	return out
}

func TestScore_RiceBagStorm(t *testing.T) {
	rice := crop.DefaultTable().Resolve(crop.Rice)
	got := Score(weather(12, 80, 75), rice, batch(crop.Rice, model.StorageBag))
	if got.Score != 100 {
		t.Errorf("score = %d, want 100", got.Score)
	}
	if got.RiskLevel != model.RiskCritical {
		t.Errorf("level = %s, want critical", got.RiskLevel)
	}
	want := []model.FactorKind{model.FactorHumidityOverThreshold, model.FactorRainProbability, model.FactorBagStorage}
	if !reflect.DeepEqual(kinds(got.Factors), want) {
		t.Errorf("factors = %v, want %v", kinds(got.Factors), want)
	}
}

func TestScore_PotatoSiloCalm(t *testing.T) {
	potato := crop.DefaultTable().Resolve(crop.Potato)
	got := Score(weather(8, 50, 10), potato, batch(crop.Potato, model.StorageSilo))
	if got.Score != 0 || got.RiskLevel != model.RiskLow {
		t.Errorf("got score %d level %s, want 0 low", got.Score, got.RiskLevel)
	}
	if len(got.Factors) != 0 {
		t.Errorf("expected no factors, got %v", got.Factors)
	}
}

func TestScore_HumidityBoundaries(t *testing.T) {
	rice := crop.DefaultTable().Resolve(crop.Rice) // threshold 70
	tests := []struct {
		humidity float64
		want     int
	}{
		{70.5, 40},
		{70, 20}, // equal to threshold is not above it
		{60.5, 20},
		{60, 0},
		{30, 0},
	}
	for _, tt := range tests {
		got := Score(weather(12, tt.humidity, 0), rice, batch(crop.Rice, model.StorageSilo))
		if got.Score != tt.want {
			t.Errorf("humidity %v: score = %d, want %d", tt.humidity, got.Score, tt.want)
		}
	}
}

func TestScore_RainTiers(t *testing.T) {
	rice := crop.DefaultTable().Resolve(crop.Rice)
	tests := []struct {
		rain       float64
		want       int
		withFactor bool
	}{
		{100, 50, true},
		{70, 50, true},
		{69, 30, true},
		{50, 30, true},
		{49, 15, false},
		{30, 15, false},
		{29, 0, false},
	}
	for _, tt := range tests {
		got := Score(weather(12, 0, tt.rain), rice, batch(crop.Rice, model.StorageSilo))
		if got.Score != tt.want {
			t.Errorf("rain %v: score = %d, want %d", tt.rain, got.Score, tt.want)
		}
		if (len(got.Factors) == 1) != tt.withFactor {
			t.Errorf("rain %v: factors = %v, withFactor %v", tt.rain, got.Factors, tt.withFactor)
		}
	}
}

func TestScore_TemperatureBands(t *testing.T) {
	rice := crop.DefaultTable().Resolve(crop.Rice) // [10, 15]
	tests := []struct {
		temp float64
		want int
	}{
		{12, 0},
		{8, 0},
		{7.5, 15},
		{5, 15},
		{4.9, 30},
		{17, 0},
		{17.5, 15},
		{20, 15},
		{20.1, 30},
		{31, 30},
	}
	for _, tt := range tests {
		got := Score(weather(tt.temp, 0, 0), rice, batch(crop.Rice, model.StorageSilo))
		if got.Score != tt.want {
			t.Errorf("temp %v: score = %d, want %d", tt.temp, got.Score, tt.want)
		}
	}
}

func TestScore_RulesStack(t *testing.T) {
	jute := crop.DefaultTable().Resolve(crop.Jute) // threshold 65, [15,25]
	got := Score(weather(31, 60, 55), jute, batch(crop.Jute, model.StorageBag))
	// 20 humidity watch + 30 rain + 30 temperature + 10 bag
	if got.Score != 90 {
		t.Errorf("score = %d, want 90", got.Score)
	}
	if len(got.Factors) != 4 {
		t.Errorf("factors = %v, want 4", kinds(got.Factors))
	}
}

func TestScore_RainSensitivityNotApplied(t *testing.T) {
	table := crop.DefaultTable()
	w := weather(12, 0, 60)
	high := Score(w, table.Resolve(crop.Rice), batch(crop.Rice, model.StorageSilo))
	medium := Score(w, table.Resolve(crop.Jute), batch(crop.Jute, model.StorageSilo))
	if high.RainExposure != 90 || medium.RainExposure != 60 {
		t.Errorf("rain exposure = %v / %v, want 90 / 60", high.RainExposure, medium.RainExposure)
	}
	if high.Score != 30 {
		t.Errorf("score = %d, want 30 regardless of sensitivity", high.Score)
	}
}

func TestScore_Deterministic(t *testing.T) {
	rice := crop.DefaultTable().Resolve(crop.Rice)
	w, b := weather(22, 66, 52), batch(crop.Rice, model.StorageBag)
	first := Score(w, rice, b)
	for i := 0; i < 10; i++ {
		if got := Score(w, rice, b); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestClassify_AllBoundaries(t *testing.T) {
	tests := []struct {
		score int
		level model.RiskLevel
	}{
		{130, model.RiskCritical},
		{80, model.RiskCritical},
		{79, model.RiskHigh},
		{60, model.RiskHigh},
		{59, model.RiskMedium},
		{40, model.RiskMedium},
		{39, model.RiskLow},
		{0, model.RiskLow},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.level {
			t.Errorf("score %d: expected %s, got %s", tt.score, tt.level, got)
		}
	}
}
