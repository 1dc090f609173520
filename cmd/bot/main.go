package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"TrendSentry/internal/config"
	"TrendSentry/internal/engine"
	"TrendSentry/internal/notifier"
	"TrendSentry/internal/recorder"
	"TrendSentry/internal/scheduler"
	"TrendSentry/internal/source"
	"TrendSentry/internal/subs"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TrendSentry starting...")

	// Load .env before config so env overrides pick it up.
	_ = godotenv.Load()

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

	// Init price source
	var src source.Source
	if cfg.DataSource.BaseURL != "" {
		src = source.NewRESTSource(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, cfg.DataSource.Points)
	} else {
		src = source.NewSyntheticSource(100, cfg.DataSource.Points)
	}
	log.Printf("[INFO] price source: %s", src.Name())

	eng := engine.NewEngine(src)

	// Init subscription repository
	repo, err := subs.NewFileRepository(cfg.Storage.SubscriptionsFile)
	if err != nil {
		log.Fatalf("[FATAL] init subscription store: %v", err)
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Storage.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Storage.SQLitePath)
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

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, eng, repo, tn, rec, cfg.Instruments, cfg.Timeframes)
	if err := sched.RegisterAll(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing alert scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] TrendSentry is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TrendSentry stopped")
}
