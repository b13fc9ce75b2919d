package advisory

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"HarvestGuard/internal/model"
	"HarvestGuard/internal/risk"
)

// Composer turns a risk assessment into advisory text for one locale.
type Composer struct {
	t Templates
}

// NewComposer returns a Composer over t. t must pass Validate.
func NewComposer(t Templates) (*Composer, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Composer{t: t}, nil
}

// Templates returns the composer's template set.
func (c *Composer) Templates() Templates { return c.t }

// Compose picks the most salient advisory for the batch. Critical checks
// rain+humidity, humidity, rain, then temperature; a critical level that
// matches none of them is treated as high.
func (c *Composer) Compose(w model.WeatherObservation, p model.CropProfile, b model.StorageBatch, level model.RiskLevel, _ []model.Factor) string {
	switch level {
	case model.RiskCritical:
		if msg, ok := c.critical(w, p, b); ok {
			return msg
		}
		fallthrough
	case model.RiskHigh:
		if msg, ok := c.high(w, p, b); ok {
			return msg
		}
		return c.monitor(w, b)
	case model.RiskMedium:
		return c.monitor(w, b)
	default:
		return fmt.Sprintf(c.t.Favorable, b.CropType, c.storage(b.StorageType))
	}
}

func (c *Composer) critical(w model.WeatherObservation, p model.CropProfile, b model.StorageBatch) (string, bool) {
	t := c.t
	crop, storage := b.CropType, c.storage(b.StorageType)
	rainSevere := w.RainProbabilityPercent >= risk.RainSevere
	humid := risk.HumidityOver(w, p)

	switch {
	case rainSevere && humid:
		lead := fmt.Sprintf(t.RainAndHumidity, c.timeRef(w), crop, storage, num(w.HumidityPercent))
		return lead + " " + c.standalone(c.action(p, b, 0, t.RainAndHumidityFallback)), true
	case humid:
		lead := fmt.Sprintf(t.HumidityCritical, crop, storage, num(w.HumidityPercent))
		return lead + " " + c.standalone(c.action(p, b, 0, t.HumidityFallback)), true
	case rainSevere:
		lead := fmt.Sprintf(t.RainCritical, c.timeRef(w), num(w.RainProbabilityPercent), crop, storage)
		return lead + " " + c.mitigation(b.StorageType), true
	case risk.OutsideBand(w, p, risk.TemperatureExtreme):
		r := p.TemperatureRange
		return fmt.Sprintf(t.TemperatureCritical, num(w.TemperatureC), crop, num(r.Min), num(r.Max), storage), true
	}
	return "", false
}

func (c *Composer) high(w model.WeatherObservation, p model.CropProfile, b model.StorageBatch) (string, bool) {
	t := c.t
	crop, storage := b.CropType, c.storage(b.StorageType)
	switch {
	case w.RainProbabilityPercent >= risk.RainLikely:
		return fmt.Sprintf(t.RainPrepare, c.timeRef(w), num(w.RainProbabilityPercent), crop, storage,
			c.action(p, b, 0, t.RainPrepareFallback)), true
	case risk.HumidityNear(w, p):
		// Second action, falling back to the first when only one exists.
		idx := 1
		if len(p.Actions(b.StorageType)) < 2 {
			idx = 0
		}
		return fmt.Sprintf(t.HumidityWatch, num(w.HumidityPercent), crop, storage,
			c.action(p, b, idx, t.HumidityWatchFallback)), true
	}
	return "", false
}

func (c *Composer) monitor(w model.WeatherObservation, b model.StorageBatch) string {
	msg := fmt.Sprintf(c.t.Monitor, b.CropType, c.storage(b.StorageType))
	if w.RainProbabilityPercent > risk.RainPossible {
		msg += " " + fmt.Sprintf(c.t.MonitorRainNote, num(w.RainProbabilityPercent))
	}
	return msg
}

func (c *Composer) timeRef(w model.WeatherObservation) string {
	switch {
	case w.RainProbabilityPercent >= risk.RainSevere:
		return c.t.Tomorrow
	case w.RainProbabilityPercent >= risk.RainLikely:
		return c.t.DayAfterTomorrow
	default:
		return c.t.Tomorrow
	}
}

func (c *Composer) storage(st model.StorageType) string {
	switch st {
	case model.StorageSilo, model.StorageBag:
		return c.t.Storage[st]
	default:
		return string(st)
	}
}

func (c *Composer) mitigation(st model.StorageType) string {
	switch st {
	case model.StorageSilo, model.StorageBag:
		return c.t.RainMitigation[st]
	default:
		return ""
	}
}

func (c *Composer) action(p model.CropProfile, b model.StorageBatch, idx int, fallback string) string {
	actions := p.Actions(b.StorageType)
	if idx < len(actions) {
		return c.t.Action(actions[idx])
	}
	return fallback
}

func (c *Composer) standalone(s string) string {
	if c.t.CapitalizeStandalone {
		s = capitalize(s)
	}
	return fmt.Sprintf(c.t.Standalone, strings.TrimSuffix(s, "."))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// num prints a number the way farmers read it: no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
