package store

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"HarvestGuard/internal/model"
)

// SQLiteStore persists batches in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Printf("[INFO] sqlite batch store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS batches (
		seq          INTEGER PRIMARY KEY AUTOINCREMENT,
		id           TEXT NOT NULL UNIQUE,
		crop_type    TEXT NOT NULL,
		weight_kg    REAL NOT NULL,
		storage_type TEXT NOT NULL,
		status       TEXT NOT NULL,
		harvest_date TEXT NOT NULL
	)`)
	return err
}

func (s *SQLiteStore) ListBatches() ([]model.StorageBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, crop_type, weight_kg, storage_type, status, harvest_date
		FROM batches ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	batches := []model.StorageBatch{}
	for rows.Next() {
		var b model.StorageBatch
		var storageType, status string
		if err := rows.Scan(&b.ID, &b.CropType, &b.WeightKg, &storageType, &status, &b.HarvestDate); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		b.StorageType = model.StorageType(storageType)
		b.Status = model.BatchStatus(status)
		b.Synced = true
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (s *SQLiteStore) SaveBatch(b model.StorageBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO batches (id, crop_type, weight_kg, storage_type, status, harvest_date)
		VALUES (?,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET
			crop_type = excluded.crop_type,
			weight_kg = excluded.weight_kg,
			storage_type = excluded.storage_type,
			status = excluded.status,
			harvest_date = excluded.harvest_date`,
		b.ID, b.CropType, b.WeightKg, string(b.StorageType), string(b.Status), b.HarvestDate,
	)
	if err != nil {
		return fmt.Errorf("save batch %s: %w", b.ID, err)
	}
	return nil
}

func (s *SQLiteStore) UpdateStatus(id string, status model.BatchStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`UPDATE batches SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update %s: %w", id, ErrBatchNotFound)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite batch store")
	return s.db.Close()
}
