package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "OPENWEATHER_API_KEY",
		"HARVESTGUARD_DISTRICT", "HTTPS_PROXY", "SQLITE_PATH", "BATCHES_FILE", "STORAGE_BACKEND",
		"ALERT_LOCALE", "CROP_PROFILES_FILE", "CRON_EVALUATE", "PORT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	tests := []struct {
		name, got, want string
	}{
		{"district", cfg.Weather.District, "Dhaka"},
		{"evaluate cron", cfg.Schedule.EvaluateCron, "0 */30 * * * *"},
		{"digest cron", cfg.Schedule.DigestCron, "0 0 7 * * *"},
		{"backend", cfg.Storage.Backend, BackendFile},
		{"batches file", cfg.Storage.BatchesFile, "data/batches.json"},
		{"sqlite", cfg.Database.SQLitePath, "data/harvestguard.db"},
		{"locale", cfg.Alerts.Locale, "bn"},
		{"port", cfg.Server.Port, "8080"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if cfg.TelegramEnabled() {
		t.Error("telegram should be disabled without credentials")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
telegram:
  bot_token: file-token
  chat_id: "100"
weather:
  district: Sylhet
storage:
  backend: sqlite
alerts:
  locale: en
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("PORT", "9090")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Telegram.BotToken != "env-token" {
		t.Errorf("bot token = %q, env should win", cfg.Telegram.BotToken)
	}
	if cfg.Weather.District != "Sylhet" || cfg.Storage.Backend != BackendSQLite || cfg.Alerts.Locale != "en" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if !cfg.TelegramEnabled() {
		t.Error("telegram should be enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, _ := Load(filepath.Join(t.TempDir(), "none.yaml"))

	bad := *cfg
	bad.Storage.Backend = "redis"
	if err := bad.Validate(); err == nil {
		t.Error("expected unknown backend to fail")
	}

	bad = *cfg
	bad.Alerts.Locale = "fr"
	if err := bad.Validate(); err == nil {
		t.Error("expected unknown locale to fail")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("telegram: [unclosed"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
