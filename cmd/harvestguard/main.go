package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"HarvestGuard/internal/advisory"
	"HarvestGuard/internal/alert"
	"HarvestGuard/internal/api"
	"HarvestGuard/internal/config"
	"HarvestGuard/internal/crop"
	"HarvestGuard/internal/notifier"
	"HarvestGuard/internal/recorder"
	"HarvestGuard/internal/scheduler"
	"HarvestGuard/internal/store"
	"HarvestGuard/internal/weather"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] HarvestGuard starting...")

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using system environment")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Crop profiles
	profiles := crop.DefaultTable()
	if cfg.Alerts.CropProfilesFile != "" {
		profiles, err = crop.LoadTable(cfg.Alerts.CropProfilesFile)
		if err != nil {
			log.Fatalf("[FATAL] load crop profiles: %v", err)
		}
	}
	log.Printf("[INFO] crop profiles: %v (default %s)", profiles.Names(), profiles.Fallback())

	// Advisory engine
	locale, _ := advisory.ParseLocale(cfg.Alerts.Locale)
	tmpl, err := advisory.TemplatesFor(locale)
	if err != nil {
		log.Fatalf("[FATAL] load templates: %v", err)
	}
	composer, err := advisory.NewComposer(tmpl)
	if err != nil {
		log.Fatalf("[FATAL] init composer: %v", err)
	}
	gen := alert.NewGenerator(profiles, composer)

	// Weather
	ws := weather.NewServiceFromKey(cfg.Weather.APIKey, cfg.Proxy)

	// Batch store
	var st store.Store
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		st, err = store.NewSQLiteStore(cfg.Database.SQLitePath)
	default:
		st, err = store.NewFileStore(cfg.Storage.BatchesFile)
	}
	if err != nil {
		log.Fatalf("[FATAL] init %s store: %v", cfg.Storage.Backend, err)
	}
	defer st.Close()
	log.Printf("[INFO] batch store: %s", cfg.Storage.Backend)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Notifier
	var n notifier.Notifier
	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		n = tn
	} else {
		log.Println("[WARN] telegram not configured, critical alerts go to the console")
		n = notifier.NewConsoleNotifier()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, ws, cfg.Weather.District, st, gen, rec, n)
	if err := sched.RegisterAll(cfg.Schedule.EvaluateCron, cfg.Schedule.DigestCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, evaluating now")
		go sched.RunNow()
	}

	// HTTP API
	handler, err := api.NewHandler(ws, st, profiles, rec, cfg.Weather.District, locale)
	if err != nil {
		log.Fatalf("[FATAL] init api: %v", err)
	}
	app := api.NewApp(handler)
	go func() {
		log.Printf("[INFO] HTTP server starting on :%s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Printf("[ERROR] HTTP server: %v", err)
		}
	}()

	log.Println("[INFO] HarvestGuard is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("[WARN] HTTP server forced to shutdown: %v", err)
	}
	log.Println("[INFO] HarvestGuard stopped")
}
