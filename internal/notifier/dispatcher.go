package notifier

import (
	"context"
	"log"
	"sync"
	"time"

	"HarvestGuard/internal/advisory"
	"HarvestGuard/internal/model"
)

// seenTTL bounds how long a delivered alert key is remembered.
const seenTTL = 24 * time.Hour

// Dispatcher sends each new critical alert once.
type Dispatcher struct {
	Notifier   Notifier
	Templates  advisory.Templates
	MaxRetries int

	mu   sync.Mutex
	seen map[string]time.Time
}

// NewDispatcher creates a Dispatcher formatting with t.
func NewDispatcher(n Notifier, t advisory.Templates) *Dispatcher {
	return &Dispatcher{Notifier: n, Templates: t, MaxRetries: 3, seen: make(map[string]time.Time)}
}

// Dispatch notifies every critical alert not delivered before and returns
// how many were sent. Failed deliveries stay unseen so a later run retries them.
func (d *Dispatcher) Dispatch(ctx context.Context, alerts []model.SmartAlert) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	for key, at := range d.seen {
		if now.Sub(at) > seenTTL {
			delete(d.seen, key)
		}
	}

	sent := 0
	for _, a := range alerts {
		if a.RiskLevel != model.RiskCritical {
			continue
		}
		key := a.Key()
		if _, ok := d.seen[key]; ok {
			continue
		}
		if err := d.Notifier.SendWithRetry(ctx, FormatCriticalSMS(a, d.Templates), d.MaxRetries); err != nil {
			log.Printf("[ERROR] send critical alert for %s: %v", a.CropType, err)
			continue
		}
		d.seen[key] = now
		sent++
	}
	return sent
}
