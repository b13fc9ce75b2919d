package model

// RainSensitivity is the qualitative rain exposure class of a crop.
type RainSensitivity string

const (
	RainSensitivityHigh   RainSensitivity = "high"
	RainSensitivityMedium RainSensitivity = "medium"
	RainSensitivityLow    RainSensitivity = "low"
)

// Multiplier returns the weighting associated with the sensitivity class.
func (r RainSensitivity) Multiplier() float64 {
	switch r {
	case RainSensitivityHigh:
		return 1.5
	case RainSensitivityMedium:
		return 1.0
	default:
		return 0.5
	}
}

// Action identifies a recommended storage action. Locales map it to text;
// an action without a translation is rendered verbatim.
type Action string

const (
	ActionRunFan              Action = "run_fan"
	ActionIncreaseAirflow     Action = "increase_airflow"
	ActionControlHumidity     Action = "control_humidity"
	ActionMoveBagsToDryPlace  Action = "move_bags_to_dry_place"
	ActionEnsureAirflow       Action = "ensure_airflow"
	ActionRunFanRegularly     Action = "run_fan_regularly"
	ActionCheckHumidity       Action = "check_humidity"
	ActionMaintainVentilation Action = "maintain_ventilation"
	ActionRaiseBags           Action = "raise_bags"
	ActionShieldFromRain      Action = "shield_from_rain"
	ActionInspectRegularly    Action = "inspect_regularly"
	ActionKeepBagsDry         Action = "keep_bags_dry"
	ActionKeepAwayFromRain    Action = "keep_away_from_rain"
	ActionControlTemperature  Action = "control_temperature"
	ActionStoreBagsDry        Action = "store_bags_dry"
)

// TemperatureRange is the optimal storage band in degrees Celsius.
type TemperatureRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// CropProfile holds the environmental tolerances of one crop.
type CropProfile struct {
	HumidityThresholdPercent float64                  `json:"humidityThreshold" yaml:"humidity_threshold"`
	TemperatureRange         TemperatureRange         `json:"temperatureRange" yaml:"temperature_range"`
	RainSensitivity          RainSensitivity          `json:"rainSensitivity" yaml:"rain_sensitivity"`
	StorageActions           map[StorageType][]Action `json:"storageActions" yaml:"storage_actions"`
}

// Actions returns the prioritized actions for a storage type.
func (p CropProfile) Actions(st StorageType) []Action {
	return p.StorageActions[st]
}
