package advisory

import "HarvestGuard/internal/model"

var english = Templates{
	Locale:           LocaleEnglish,
	Tomorrow:         "tomorrow",
	DayAfterTomorrow: "the day after tomorrow",
	Storage: map[model.StorageType]string{
		model.StorageSilo: "in the silo",
		model.StorageBag:  "in storage bags",
	},
	Standalone:           "%s.",
	CapitalizeStandalone: true,

	RainAndHumidity:         "Rain is expected %[1]s and humidity around your %[2]s %[3]s is %[4]s%% (above the limit).",
	RainAndHumidityFallback: "take action immediately",
	HumidityCritical:        "Humidity around your %[1]s %[2]s is %[3]s%% (danger level).",
	HumidityFallback:        "increase airflow",
	RainCritical:            "%[2]s%% chance of rain %[1]s. Protect the %[3]s %[4]s.",
	RainMitigation: map[model.StorageType]string{
		model.StorageSilo: "Keep doors and windows shut and run the fans.",
		model.StorageBag:  "Move the bags to higher ground or cover them.",
	},
	TemperatureCritical: "Temperature is %[1]s°C (%[3]s-%[4]s°C is recommended for %[2]s). Take steps to control the temperature %[5]s.",

	RainPrepare:           "%[2]s%% chance of rain %[1]s. Get the %[3]s %[4]s ready and %[5]s.",
	RainPrepareFallback:   "inspect regularly",
	HumidityWatch:         "Humidity is %[1]s%% (high). For the %[2]s %[3]s, %[4]s.",
	HumidityWatchFallback: "make sure air can circulate",

	Monitor:         "Keep monitoring conditions for the %[1]s %[2]s.",
	MonitorRainNote: "Chance of rain: %s%%.",
	Favorable:       "Conditions for the %[1]s %[2]s are favorable. Keep up regular checks.",

	Actions: map[model.Action]string{
		model.ActionRunFan:              "turn on the fans",
		model.ActionIncreaseAirflow:     "increase airflow",
		model.ActionControlHumidity:     "control the humidity",
		model.ActionMoveBagsToDryPlace:  "move the bags to a dry place",
		model.ActionEnsureAirflow:       "make sure air can circulate",
		model.ActionRunFanRegularly:     "run the fans regularly",
		model.ActionCheckHumidity:       "check the humidity",
		model.ActionMaintainVentilation: "keep the ventilation going",
		model.ActionRaiseBags:           "keep the bags on raised ground",
		model.ActionShieldFromRain:      "keep it protected from rain",
		model.ActionInspectRegularly:    "inspect regularly",
		model.ActionKeepBagsDry:         "keep the bags dry",
		model.ActionKeepAwayFromRain:    "keep it away from rain",
		model.ActionControlTemperature:  "control the temperature",
		model.ActionStoreBagsDry:        "store the bags in a dry place",
	},

	FactorHumidityOver: "humidity %s%% (limit: %s%%)",
	FactorHumidityNear: "humidity high: %s%%",
	FactorRain:         "rain probability %s%%",
	FactorTemperature:  "temperature %s°C (recommended: %s-%s°C)",
	FactorBagStorage:   "bag storage (exposed to rain)",

	RiskLabels: map[model.RiskLevel]string{
		model.RiskCritical: "Critical",
		model.RiskHigh:     "High",
		model.RiskMedium:   "Medium",
		model.RiskLow:      "Low",
	},
}
