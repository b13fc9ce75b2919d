package alert

import (
	"strings"
	"testing"
	"time"

	"HarvestGuard/internal/advisory"
	"HarvestGuard/internal/crop"
	"HarvestGuard/internal/model"
)

var fixedNow = time.Date(2026, 10, 19, 6, 30, 0, 0, time.UTC)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	tmpl, err := advisory.TemplatesFor(advisory.LocaleBangla)
	if err != nil {
		t.Fatal(err)
	}
	c, err := advisory.NewComposer(tmpl)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGenerator(crop.DefaultTable(), c)
	g.Now = func() time.Time { return fixedNow }
	return g
}

func TestGenerateAlerts_RiceBagStorm(t *testing.T) {
	g := newGenerator(t)
	w := model.WeatherObservation{Location: "Dhaka, BD", TemperatureC: 12, HumidityPercent: 80, RainProbabilityPercent: 75}
	batches := []model.StorageBatch{{ID: "r1", CropType: crop.Rice, WeightKg: 800, StorageType: model.StorageBag, Status: model.StatusActive}}

	alerts := g.GenerateAlerts(batches, w)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.Score != 100 || a.RiskLevel != model.RiskCritical {
		t.Errorf("score %d level %s, want 100 critical", a.Score, a.RiskLevel)
	}
	if !a.ActionRequired {
		t.Error("critical alert should require action")
	}
	if !strings.Contains(a.Message, "বৃষ্টি হবে এবং আপনার") || !strings.Contains(a.Message, "বস্তা উঁচু স্থানে রাখুন") {
		t.Errorf("message missing combined phrasing or first bag action: %q", a.Message)
	}
	if a.BatchID != "r1" || a.CropType != crop.Rice || !a.Timestamp.Equal(fixedNow) {
		t.Errorf("unexpected metadata: %+v", a)
	}
	if len(a.Factors) != 3 {
		t.Errorf("expected 3 rendered factors, got %v", a.Factors)
	}
}

func TestGenerateAlerts_PotatoSiloCalm(t *testing.T) {
	g := newGenerator(t)
	w := model.WeatherObservation{TemperatureC: 8, HumidityPercent: 50, RainProbabilityPercent: 10}
	alerts := g.GenerateAlerts([]model.StorageBatch{{ID: "p1", CropType: crop.Potato, StorageType: model.StorageSilo, Status: model.StatusActive}}, w)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.Score != 0 || a.RiskLevel != model.RiskLow || a.ActionRequired {
		t.Errorf("got %+v, want low without action", a)
	}
	if !strings.Contains(a.Message, "পরিস্থিতি অনুকূল রয়েছে") {
		t.Errorf("expected favorable message, got %q", a.Message)
	}
}

func TestGenerateAlerts_StatusFilterKeepsOrder(t *testing.T) {
	g := newGenerator(t)
	w := model.WeatherObservation{TemperatureC: 12, HumidityPercent: 65, RainProbabilityPercent: 55}
	batches := []model.StorageBatch{
		{ID: "a", CropType: crop.Wheat, StorageType: model.StorageSilo, Status: model.StatusActive},
		{ID: "b", CropType: crop.Jute, StorageType: model.StorageBag, Status: model.StatusSold},
		{ID: "c", CropType: crop.Maize, StorageType: model.StorageBag, Status: model.StatusActive},
		{ID: "d", CropType: crop.Rice, StorageType: model.StorageBag, Status: model.StatusLost},
		{ID: "e", CropType: "  UnknownCropXYZ ", StorageType: model.StorageBag, Status: model.StatusActive},
	}
	alerts := g.GenerateAlerts(batches, w)
	var ids []string
	for _, a := range alerts {
		ids = append(ids, a.BatchID)
	}
	if strings.Join(ids, ",") != "a,c,e" {
		t.Errorf("alert batch ids = %v, want [a c e]", ids)
	}
	// Unknown crop scores like rice.
	rice := g.GenerateAlert(model.StorageBatch{CropType: crop.Rice, StorageType: model.StorageBag, Status: model.StatusActive}, w)
	if alerts[2].Score != rice.Score {
		t.Errorf("unknown crop score %d, want rice score %d", alerts[2].Score, rice.Score)
	}
}

func TestGenerateAlerts_ActionRequired(t *testing.T) {
	g := newGenerator(t)
	var batches []model.StorageBatch
	for _, c := range []string{crop.Potato, crop.Rice, crop.Jute, crop.Wheat, crop.Maize} {
		for _, st := range model.StorageTypes {
			batches = append(batches, model.StorageBatch{CropType: c, StorageType: st, Status: model.StatusActive})
		}
	}
	for _, w := range []model.WeatherObservation{
		{TemperatureC: 8, HumidityPercent: 40, RainProbabilityPercent: 0},
		{TemperatureC: 14, HumidityPercent: 66, RainProbabilityPercent: 45},
		{TemperatureC: 22, HumidityPercent: 71, RainProbabilityPercent: 60},
		{TemperatureC: 33, HumidityPercent: 90, RainProbabilityPercent: 95},
	} {
		for _, a := range g.GenerateAlerts(batches, w) {
			want := a.RiskLevel == model.RiskCritical || a.RiskLevel == model.RiskHigh
			if a.ActionRequired != want {
				t.Errorf("%s/%s: actionRequired = %v for level %s", a.CropType, a.BatchID, a.ActionRequired, a.RiskLevel)
			}
		}
	}
}

func TestGenerateAlerts_Empty(t *testing.T) {
	g := newGenerator(t)
	alerts := g.GenerateAlerts(nil, model.WeatherObservation{})
	if alerts == nil || len(alerts) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", alerts)
	}
	if HasCriticalAlert(alerts) {
		t.Error("empty list has no critical alert")
	}
}

func TestHasCriticalAlert(t *testing.T) {
	alerts := []model.SmartAlert{{RiskLevel: model.RiskHigh}, {RiskLevel: model.RiskLow}}
	if HasCriticalAlert(alerts) {
		t.Error("no critical alert expected")
	}
	alerts = append(alerts, model.SmartAlert{RiskLevel: model.RiskCritical})
	if !HasCriticalAlert(alerts) {
		t.Error("critical alert expected")
	}
}

func TestSortBySeverity(t *testing.T) {
	in := []model.SmartAlert{
		{BatchID: "1", RiskLevel: model.RiskLow},
		{BatchID: "2", RiskLevel: model.RiskCritical},
		{BatchID: "3", RiskLevel: model.RiskMedium},
		{BatchID: "4", RiskLevel: model.RiskCritical},
		{BatchID: "5", RiskLevel: model.RiskHigh},
	}
	got := SortBySeverity(in)
	var ids []string
	for _, a := range got {
		ids = append(ids, a.BatchID)
	}
	if strings.Join(ids, "") != "24531" {
		t.Errorf("sorted ids = %v, want 2 4 5 3 1", ids)
	}
	if in[0].BatchID != "1" {
		t.Error("SortBySeverity must not reorder its input")
	}
	counts := CountByLevel(in)
	if counts[model.RiskCritical] != 2 || counts[model.RiskLow] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
