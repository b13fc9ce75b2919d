package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"HarvestGuard/internal/advisory"
	"HarvestGuard/internal/alert"
	"HarvestGuard/internal/model"
)

// FormatCriticalSMS formats a critical alert as a short SMS-style message.
func FormatCriticalSMS(a model.SmartAlert, t advisory.Templates) string {
	var b strings.Builder
	b.WriteString("🚨 <b>HarvestGuard Alert System</b>\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", a.Timestamp.Format("02 Jan, 15:04")))
	b.WriteString("──────────────\n")
	b.WriteString(html.EscapeString(a.Message) + "\n")
	b.WriteString("──────────────\n")
	b.WriteString(fmt.Sprintf("Risk Level: %s\n", strings.ToUpper(t.RiskLabel(a.RiskLevel))))
	b.WriteString(fmt.Sprintf("Crop: %s\n", html.EscapeString(a.CropType)))
	b.WriteString(fmt.Sprintf("Action Required: %s", yesNo(a.ActionRequired)))
	return b.String()
}

// FormatDigest summarizes an evaluation, most severe alerts first.
func FormatDigest(w model.WeatherObservation, alerts []model.SmartAlert, t advisory.Templates) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🌾 <b>HarvestGuard</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(FormatWeather(w))
	b.WriteString("\n")

	if len(alerts) == 0 {
		b.WriteString("No active batches.")
		return b.String()
	}

	counts := alert.CountByLevel(alerts)
	if n := counts[model.RiskCritical]; n > 0 {
		b.WriteString(fmt.Sprintf("🚨 %d %s\n\n", n, t.RiskLabel(model.RiskCritical)))
	}
	for _, a := range alert.SortBySeverity(alerts) {
		b.WriteString(fmt.Sprintf("%s <b>%s</b> · %s (%d)\n", levelIcon(a.RiskLevel),
			html.EscapeString(a.CropType), t.RiskLabel(a.RiskLevel), a.Score))
		b.WriteString(fmt.Sprintf("   %s\n", html.EscapeString(a.Message)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatWeather formats an observation for display.
func FormatWeather(w model.WeatherObservation) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📍 %s\n", html.EscapeString(w.Location)))
	b.WriteString(fmt.Sprintf("🌡 %.0f°C | 💧 %.0f%% | 🌧 %.0f%%\n", w.TemperatureC, w.HumidityPercent, w.RainProbabilityPercent))
	if w.Narrative != "" {
		b.WriteString(html.EscapeString(w.Narrative) + "\n")
	}
	return b.String()
}

// FormatBatches lists stored batches.
func FormatBatches(batches []model.StorageBatch) string {
	if len(batches) == 0 {
		return "No batches stored."
	}
	var b strings.Builder
	b.WriteString("📦 <b>Batches</b>\n")
	for _, batch := range batches {
		b.WriteString(fmt.Sprintf("• %s %.0fkg %s [%s] %s\n", html.EscapeString(batch.CropType),
			batch.WeightKg, batch.StorageType, batch.Status, batch.HarvestDate))
	}
	return strings.TrimRight(b.String(), "\n")
}

func levelIcon(l model.RiskLevel) string {
	switch l {
	case model.RiskCritical:
		return "🔴"
	case model.RiskHigh:
		return "🟠"
	case model.RiskMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
