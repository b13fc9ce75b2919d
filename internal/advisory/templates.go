package advisory

import (
	"fmt"
	"strings"

	"HarvestGuard/internal/model"
)

// Locale selects a message template set.
type Locale string

const (
	LocaleBangla  Locale = "bn"
	LocaleEnglish Locale = "en"
)

// DefaultLocale is the farmer-facing language.
const DefaultLocale = LocaleBangla

// Templates holds the literal text of every advisory a composer can produce.
// Format strings use explicit argument indexes so locales can reorder them;
// argument order is documented per field.
type Templates struct {
	Locale Locale

	// Time references, chosen by rain probability.
	Tomorrow         string
	DayAfterTomorrow string

	// Storage phrases appended after the crop name ("<crop> <storage>").
	Storage map[model.StorageType]string

	// Standalone formats an action appended as its own sentence.
	Standalone           string
	CapitalizeStandalone bool

	RainAndHumidity         string // timeRef, crop, storage, humidity
	RainAndHumidityFallback string
	HumidityCritical        string // crop, storage, humidity
	HumidityFallback        string
	RainCritical            string // timeRef, rain, crop, storage
	RainMitigation          map[model.StorageType]string
	TemperatureCritical     string // temperature, crop, min, max, storage

	RainPrepare           string // timeRef, rain, crop, storage, action
	RainPrepareFallback   string
	HumidityWatch         string // humidity, crop, storage, action
	HumidityWatchFallback string

	Monitor         string // crop, storage
	MonitorRainNote string // rain
	Favorable       string // crop, storage

	Actions map[model.Action]string

	FactorHumidityOver string // humidity, threshold
	FactorHumidityNear string // humidity
	FactorRain         string // rain
	FactorTemperature  string // temperature, min, max
	FactorBagStorage   string

	RiskLabels map[model.RiskLevel]string
}

// Validate checks that every closed-set value has phrasing.
func (t Templates) Validate() error {
	if !strings.Contains(t.Standalone, "%s") {
		return fmt.Errorf("locale %s: standalone format must contain %%s", t.Locale)
	}
	for _, st := range model.StorageTypes {
		if t.Storage[st] == "" {
			return fmt.Errorf("locale %s: no storage phrase for %s", t.Locale, st)
		}
		if t.RainMitigation[st] == "" {
			return fmt.Errorf("locale %s: no rain mitigation for %s", t.Locale, st)
		}
	}
	for _, l := range []model.RiskLevel{model.RiskLow, model.RiskMedium, model.RiskHigh, model.RiskCritical} {
		if t.RiskLabels[l] == "" {
			return fmt.Errorf("locale %s: no label for %s", t.Locale, l)
		}
	}
	return nil
}

// Action returns the localized text of a, or a itself when untranslated.
func (t Templates) Action(a model.Action) string {
	if s, ok := t.Actions[a]; ok {
		return s
	}
	return string(a)
}

// RiskLabel returns the localized name of a risk level.
func (t Templates) RiskLabel(l model.RiskLevel) string {
	if s, ok := t.RiskLabels[l]; ok {
		return s
	}
	return string(l)
}

// Factor renders a scoring factor for display.
func (t Templates) Factor(f model.Factor) string {
	switch f.Kind {
	case model.FactorHumidityOverThreshold:
		return fmt.Sprintf(t.FactorHumidityOver, num(f.Value), num(f.Limit))
	case model.FactorHumidityNearThreshold:
		return fmt.Sprintf(t.FactorHumidityNear, num(f.Value))
	case model.FactorRainProbability:
		return fmt.Sprintf(t.FactorRain, num(f.Value))
	case model.FactorTemperatureExtreme:
		return fmt.Sprintf(t.FactorTemperature, num(f.Value), num(f.Min), num(f.Max))
	case model.FactorBagStorage:
		return t.FactorBagStorage
	default:
		return string(f.Kind)
	}
}

// Factors renders every factor in order.
func (t Templates) Factors(fs []model.Factor) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, t.Factor(f))
	}
	return out
}

var locales = map[Locale]Templates{
	LocaleBangla:  bangla,
	LocaleEnglish: english,
}

// ParseLocale validates a locale code.
func ParseLocale(s string) (Locale, error) {
	l := Locale(s)
	if _, ok := locales[l]; !ok {
		return "", fmt.Errorf("unsupported locale %q", s)
	}
	return l, nil
}

// TemplatesFor returns the template set of a supported locale.
func TemplatesFor(l Locale) (Templates, error) {
	t, ok := locales[l]
	if !ok {
		return Templates{}, fmt.Errorf("unsupported locale %q", l)
	}
	return t, nil
}

// Locales lists the supported locales.
func Locales() []Locale {
	return []Locale{LocaleBangla, LocaleEnglish}
}
