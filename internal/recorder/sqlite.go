package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists alert history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS evaluation_runs (
			id               TEXT PRIMARY KEY,
			timestamp        INTEGER NOT NULL,
			trigger_type     TEXT,
			location         TEXT,
			temperature      REAL,
			humidity         REAL,
			rain_probability REAL,
			fallback_weather INTEGER,
			alert_count      INTEGER,
			critical_count   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON evaluation_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS alerts (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id          TEXT NOT NULL REFERENCES evaluation_runs(id),
			timestamp       INTEGER NOT NULL,
			batch_id        TEXT,
			crop_type       TEXT,
			risk_level      TEXT,
			score           INTEGER,
			action_required INTEGER,
			message         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_run ON alerts(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_level ON alerts(risk_level, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordEvaluation writes the run and its alerts in one transaction.
func (r *SQLiteRecorder) RecordEvaluation(run *EvaluationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	w := run.Weather

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO evaluation_runs
		(id, timestamp, trigger_type, location, temperature, humidity, rain_probability,
		 fallback_weather, alert_count, critical_count)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		run.ID, created.Unix(), run.Trigger, w.Location, w.TemperatureC, w.HumidityPercent,
		w.RainProbabilityPercent, boolInt(w.IsFallback), len(run.Alerts), run.CriticalCount(),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, a := range run.Alerts {
		if _, err := tx.Exec(`INSERT INTO alerts
			(run_id, timestamp, batch_id, crop_type, risk_level, score, action_required, message)
			VALUES (?,?,?,?,?,?,?,?)`,
			run.ID, a.Timestamp.Unix(), a.BatchID, a.CropType, string(a.RiskLevel),
			a.Score, boolInt(a.ActionRequired), a.Message,
		); err != nil {
			return fmt.Errorf("insert alert: %w", err)
		}
	}
	return tx.Commit()
}

// CountAlerts returns how many alerts of a level were recorded since a point in time.
func (r *SQLiteRecorder) CountAlerts(level string, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM alerts WHERE risk_level = ? AND timestamp >= ?`,
		level, since.Unix()).Scan(&n)
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
