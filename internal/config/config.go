package config

import (
	"fmt"
	"os"

	"HarvestGuard/internal/advisory"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Weather struct {
		APIKey   string `yaml:"api_key"`
		District string `yaml:"district"`
	} `yaml:"weather"`
	Schedule struct {
		EvaluateCron string `yaml:"evaluate_cron"`
		DigestCron   string `yaml:"digest_cron"`
	} `yaml:"schedule"`
	Storage struct {
		Backend     string `yaml:"backend"`
		BatchesFile string `yaml:"batches_file"`
	} `yaml:"storage"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Alerts struct {
		Locale           string `yaml:"locale"`
		CropProfilesFile string `yaml:"crop_profiles_file"`
	} `yaml:"alerts"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	overrides := []struct {
		env    string
		target *string
	}{
		{"TELEGRAM_BOT_TOKEN", &cfg.Telegram.BotToken},
		{"TELEGRAM_CHAT_ID", &cfg.Telegram.ChatID},
		{"OPENWEATHER_API_KEY", &cfg.Weather.APIKey},
		{"HARVESTGUARD_DISTRICT", &cfg.Weather.District},
		{"HTTPS_PROXY", &cfg.Proxy},
		{"SQLITE_PATH", &cfg.Database.SQLitePath},
		{"BATCHES_FILE", &cfg.Storage.BatchesFile},
		{"STORAGE_BACKEND", &cfg.Storage.Backend},
		{"ALERT_LOCALE", &cfg.Alerts.Locale},
		{"CROP_PROFILES_FILE", &cfg.Alerts.CropProfilesFile},
		{"CRON_EVALUATE", &cfg.Schedule.EvaluateCron},
		{"PORT", &cfg.Server.Port},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}

	// Defaults
	setDefault(&cfg.Weather.District, "Dhaka")
	setDefault(&cfg.Schedule.EvaluateCron, "0 */30 * * * *")
	setDefault(&cfg.Schedule.DigestCron, "0 0 7 * * *")
	setDefault(&cfg.Storage.Backend, BackendFile)
	setDefault(&cfg.Storage.BatchesFile, "data/batches.json")
	setDefault(&cfg.Database.SQLitePath, "data/harvestguard.db")
	setDefault(&cfg.Alerts.Locale, string(advisory.DefaultLocale))
	setDefault(&cfg.Server.Port, "8080")

	return cfg, nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendFile, BackendSQLite, c.Storage.Backend)
	}
	if _, err := advisory.ParseLocale(c.Alerts.Locale); err != nil {
		return fmt.Errorf("alerts.locale: %w", err)
	}
	if c.Storage.Backend == BackendSQLite && c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required for the sqlite backend")
	}
	return nil
}

// TelegramEnabled reports whether Telegram credentials are configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
