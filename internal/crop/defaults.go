package crop

import "HarvestGuard/internal/model"

var defaultProfiles = map[string]model.CropProfile{
	Potato: {
		HumidityThresholdPercent: 75,
		TemperatureRange:         model.TemperatureRange{Min: 4, Max: 12},
		RainSensitivity:          model.RainSensitivityHigh,
		StorageActions: map[model.StorageType][]model.Action{
			model.StorageSilo: {model.ActionRunFan, model.ActionIncreaseAirflow, model.ActionControlHumidity},
			model.StorageBag:  {model.ActionMoveBagsToDryPlace, model.ActionEnsureAirflow, model.ActionRunFan},
		},
	},
	Rice: {
		HumidityThresholdPercent: 70,
		TemperatureRange:         model.TemperatureRange{Min: 10, Max: 15},
		RainSensitivity:          model.RainSensitivityHigh,
		StorageActions: map[model.StorageType][]model.Action{
			model.StorageSilo: {model.ActionRunFanRegularly, model.ActionCheckHumidity, model.ActionMaintainVentilation},
			model.StorageBag:  {model.ActionRaiseBags, model.ActionShieldFromRain, model.ActionInspectRegularly},
		},
	},
	Jute: {
		HumidityThresholdPercent: 65,
		TemperatureRange:         model.TemperatureRange{Min: 15, Max: 25},
		RainSensitivity:          model.RainSensitivityMedium,
		StorageActions: map[model.StorageType][]model.Action{
			model.StorageSilo: {model.ActionEnsureAirflow, model.ActionCheckHumidity},
			model.StorageBag:  {model.ActionKeepBagsDry, model.ActionKeepAwayFromRain},
		},
	},
	Wheat: {
		HumidityThresholdPercent: 70,
		TemperatureRange:         model.TemperatureRange{Min: 8, Max: 18},
		RainSensitivity:          model.RainSensitivityHigh,
		StorageActions: map[model.StorageType][]model.Action{
			model.StorageSilo: {model.ActionRunFan, model.ActionControlTemperature},
			model.StorageBag:  {model.ActionStoreBagsDry, model.ActionEnsureAirflow},
		},
	},
	Maize: {
		HumidityThresholdPercent: 72,
		TemperatureRange:         model.TemperatureRange{Min: 10, Max: 15},
		RainSensitivity:          model.RainSensitivityHigh,
		StorageActions: map[model.StorageType][]model.Action{
			model.StorageSilo: {model.ActionControlHumidity, model.ActionRunFan},
			model.StorageBag:  {model.ActionRaiseBags, model.ActionShieldFromRain},
		},
	},
}

var defaultTable = mustTable(defaultProfiles, DefaultCrop)

// DefaultTable returns the built-in profile table. Rice is the fallback.
func DefaultTable() *Table { return defaultTable }

func mustTable(profiles map[string]model.CropProfile, fallback string) *Table {
	t, err := NewTable(profiles, fallback)
	if err != nil {
		panic(err)
	}
	return t
}
