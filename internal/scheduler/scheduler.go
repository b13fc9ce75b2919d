package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"HarvestGuard/internal/advisory"
	"HarvestGuard/internal/alert"
	"HarvestGuard/internal/model"
	"HarvestGuard/internal/notifier"
	"HarvestGuard/internal/recorder"
	"HarvestGuard/internal/store"
	"HarvestGuard/internal/weather"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Evaluation triggers recorded with each run.
const (
	TriggerScheduled = "SCHEDULED"
	TriggerDigest    = "DIGEST"
	TriggerCommand   = "COMMAND"
	TriggerStartup   = "STARTUP"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron       *cron.Cron
	Weather    *weather.Service
	District   string
	Store      store.Store
	Generator  *alert.Generator
	Recorder   recorder.Recorder
	Dispatcher *notifier.Dispatcher
	Notifier   notifier.Notifier
	Templates  advisory.Templates
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler. Critical alerts and digests go out through n.
func NewScheduler(ctx context.Context, ws *weather.Service, district string, st store.Store,
	gen *alert.Generator, rec recorder.Recorder, n notifier.Notifier) *Scheduler {
	tmpl := gen.Composer.Templates()
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Weather:    ws,
		District:   district,
		Store:      st,
		Generator:  gen,
		Recorder:   rec,
		Dispatcher: notifier.NewDispatcher(n, tmpl),
		Notifier:   n,
		Templates:  tmpl,
		Ctx:        ctx,
	}
}

// RegisterAll registers the evaluation and digest tasks.
func (s *Scheduler) RegisterAll(evaluateCron, digestCron string) error {
	if _, err := s.Cron.AddFunc(evaluateCron, s.evaluateTask); err != nil {
		return fmt.Errorf("register evaluate task: %w", err)
	}
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
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
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow evaluates immediately and dispatches critical alerts.
func (s *Scheduler) RunNow() {
	s.evaluateAndDispatch(TriggerStartup)
}

// Evaluate observes the weather, scores every active batch and records the run.
func (s *Scheduler) Evaluate(trigger string) (*recorder.EvaluationRun, error) {
	obs := s.Weather.ObserveDistrict(s.Ctx, s.District)
	batches, err := s.Store.ListBatches()
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}

	run := &recorder.EvaluationRun{
		ID:        uuid.NewString(),
		Trigger:   trigger,
		Weather:   obs,
		Alerts:    s.Generator.GenerateAlerts(batches, obs),
		CreatedAt: time.Now(),
	}
	if err := s.Recorder.RecordEvaluation(run); err != nil {
		log.Printf("[ERROR] record evaluation: %v", err)
	}
	log.Printf("[INFO] evaluation %s: %d alerts, %d critical", run.ID, len(run.Alerts), run.CriticalCount())
	return run, nil
}

func (s *Scheduler) evaluateTask() {
	log.Println("[INFO] running evaluate task")
	s.evaluateAndDispatch(TriggerScheduled)
}

func (s *Scheduler) evaluateAndDispatch(trigger string) {
	run, err := s.Evaluate(trigger)
	if err != nil {
		log.Printf("[ERROR] evaluate: %v", err)
		return
	}
	if n := s.Dispatcher.Dispatch(s.Ctx, run.Alerts); n > 0 {
		log.Printf("[INFO] dispatched %d critical alerts", n)
	}
}

func (s *Scheduler) digestTask() {
	log.Println("[INFO] running digest task")
	run, err := s.Evaluate(TriggerDigest)
	if err != nil {
		log.Printf("[ERROR] digest evaluate: %v", err)
		s.trySend(fmt.Sprintf("❌ digest failed: %v", err))
		return
	}
	s.trySend(notifier.FormatDigest(run.Weather, run.Alerts, s.Templates))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "/alerts":
		run, err := s.Evaluate(TriggerCommand)
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatDigest(run.Weather, run.Alerts, s.Templates)
	case "/weather":
		return notifier.FormatWeather(s.Weather.ObserveDistrict(s.Ctx, s.District))
	case "/batches":
		batches, err := s.Store.ListBatches()
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatBatches(activeFirst(batches))
	default:
		return "Commands:\n• /alerts - evaluate stored batches\n• /weather - current weather\n• /batches - stored batches"
	}
}

// activeFirst lists active batches before sold or lost ones, keeping order otherwise.
func activeFirst(batches []model.StorageBatch) []model.StorageBatch {
	out := make([]model.StorageBatch, 0, len(batches))
	for _, b := range batches {
		if b.IsActive() {
			out = append(out, b)
		}
	}
	for _, b := range batches {
		if !b.IsActive() {
			out = append(out, b)
		}
	}
	return out
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
