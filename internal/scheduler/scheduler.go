package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"TrendSentry/internal/engine"
	"TrendSentry/internal/notifier"
	"TrendSentry/internal/recorder"
	"TrendSentry/internal/subs"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Scheduler drives periodic alert scans and dispatches user commands. The
// engine holds no cross-call state, so overlapping scans are harmless.
type Scheduler struct {
	Cron        *cron.Cron
	Engine      *engine.Engine
	Subs        subs.Repository
	Notifier    *notifier.TelegramNotifier
	Recorder    recorder.Recorder
	Instruments []string
	Timeframes  []string
	Ctx         context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, eng *engine.Engine, repo subs.Repository, tn *notifier.TelegramNotifier, rec recorder.Recorder, instruments, timeframes []string) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Engine:      eng,
		Subs:        repo,
		Notifier:    tn,
		Recorder:    rec,
		Instruments: instruments,
		Timeframes:  timeframes,
		Ctx:         ctx,
	}
}

// RegisterAll registers the periodic scan task.
func (s *Scheduler) RegisterAll(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	batchID := uuid.NewString()
	log.Printf("[INFO] running alert scan %s (%d instruments x %d timeframes)",
		batchID, len(s.Instruments), len(s.Timeframes))

	analyses := s.Engine.AnalyzeAll(s.Ctx, s.Instruments, s.Timeframes)
	if err := s.Recorder.RecordScan(batchID, analyses); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}

	alerts := engine.ScanForAlerts(analyses)
	if len(alerts) == 0 {
		log.Println("[INFO] scan finished, no high-confidence signals")
		return
	}
	if err := s.Recorder.RecordAlerts(batchID, alerts); err != nil {
		log.Printf("[ERROR] record alerts: %v", err)
	}

	digest := notifier.FormatAlerts(alerts)
	subscribers, err := s.Subs.List()
	if err != nil {
		log.Printf("[ERROR] list subscribers: %v", err)
		return
	}
	log.Printf("[INFO] scan finished: %d alerts, notifying %d subscribers", len(alerts), len(subscribers))
	for _, sub := range subscribers {
		if err := s.Notifier.SendToWithRetry(s.Ctx, sub.ChatID, digest, 3); err != nil {
			log.Printf("[ERROR] notify chat %s: %v", sub.ChatID, err)
		}
	}
}

// HandleCommand processes a user command and returns the reply text.
func (s *Scheduler) HandleCommand(chatID, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}

	switch fields[0] {
	case "/analyze":
		if len(fields) < 2 {
			return "Usage: /analyze SYMBOL"
		}
		return s.analyzeInstrument(strings.ToUpper(fields[1]))
	case "/scan":
		analyses := s.Engine.AnalyzeAll(s.Ctx, s.Instruments, s.Timeframes)
		alerts := engine.ScanForAlerts(analyses)
		if len(alerts) == 0 {
			return "No high-confidence signals right now."
		}
		return notifier.FormatAlerts(alerts)
	case "/subscribe":
		if err := s.Subs.Put(subs.Subscription{ChatID: chatID, CreatedAt: time.Now()}); err != nil {
			log.Printf("[ERROR] subscribe chat %s: %v", chatID, err)
			return "Subscription failed, try again later."
		}
		return "Subscribed ✅ — you will receive high-confidence alerts."
	case "/unsubscribe":
		if err := s.Subs.Delete(chatID); err != nil {
			log.Printf("[ERROR] unsubscribe chat %s: %v", chatID, err)
			return "Unsubscribe failed, try again later."
		}
		return "Unsubscribed. No further alerts for this chat."
	case "/status":
		return s.status(chatID)
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) analyzeInstrument(symbol string) string {
	tracked := false
	for _, sym := range s.Instruments {
		if sym == symbol {
			tracked = true
			break
		}
	}
	if !tracked {
		return fmt.Sprintf("Unknown instrument %s. Tracked: %s", symbol, strings.Join(s.Instruments, ", "))
	}

	analyses := s.Engine.AnalyzeAll(s.Ctx, []string{symbol}, s.Timeframes)
	agg := engine.Aggregate(symbol, analyses)
	return notifier.FormatInstrumentReport(analyses, agg)
}

func (s *Scheduler) status(chatID string) string {
	_, subscribed, err := s.Subs.Get(chatID)
	if err != nil {
		log.Printf("[ERROR] get subscription %s: %v", chatID, err)
	}
	subscribers, _ := s.Subs.List()
	return fmt.Sprintf("Tracking %d instruments across %d timeframes.\nSubscribers: %d\nThis chat subscribed: %v",
		len(s.Instruments), len(s.Timeframes), len(subscribers), subscribed)
}
