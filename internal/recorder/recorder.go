package recorder

import (
	"time"

	"HarvestGuard/internal/model"
)

// EvaluationRun holds one pass of the alert engine over the stored batches.
type EvaluationRun struct {
	ID        string
	Trigger   string // "SCHEDULED", "DIGEST", "COMMAND", "STARTUP", "API"
	Weather   model.WeatherObservation
	Alerts    []model.SmartAlert
	CreatedAt time.Time
}

// CriticalCount returns the number of critical alerts in the run.
func (r *EvaluationRun) CriticalCount() int {
	n := 0
	for _, a := range r.Alerts {
		if a.RiskLevel == model.RiskCritical {
			n++
		}
	}
	return n
}

// Recorder persists alert history for later analysis.
type Recorder interface {
	RecordEvaluation(run *EvaluationRun) error
	Close() error
}
