package crop

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"HarvestGuard/internal/model"
)

// tableFile is the YAML layout of a custom profile table.
type tableFile struct {
	Default string                       `yaml:"default"`
	Crops   map[string]model.CropProfile `yaml:"crops"`
}

// LoadTable reads a YAML profile table. Missing default falls back to rice.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read crop profiles: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes a YAML profile table and validates every entry.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse crop profiles: %w", err)
	}
	if len(f.Crops) == 0 {
		return nil, fmt.Errorf("crop profiles: no crops defined")
	}
	if f.Default == "" {
		f.Default = DefaultCrop
	}
	for name, p := range f.Crops {
		if err := validateProfile(p); err != nil {
			return nil, fmt.Errorf("crop %q: %w", name, err)
		}
	}
	return NewTable(f.Crops, f.Default)
}

func validateProfile(p model.CropProfile) error {
	if p.HumidityThresholdPercent <= 0 || p.HumidityThresholdPercent > 100 {
		return fmt.Errorf("humidity_threshold %v out of (0,100]", p.HumidityThresholdPercent)
	}
	if p.TemperatureRange.Min > p.TemperatureRange.Max {
		return fmt.Errorf("temperature_range min %v > max %v", p.TemperatureRange.Min, p.TemperatureRange.Max)
	}
	switch p.RainSensitivity {
	case model.RainSensitivityHigh, model.RainSensitivityMedium, model.RainSensitivityLow:
	default:
		return fmt.Errorf("unknown rain_sensitivity %q", p.RainSensitivity)
	}
	for st := range p.StorageActions {
		if _, err := model.ParseStorageType(string(st)); err != nil {
			return err
		}
	}
	return nil
}
