package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"HarvestGuard/internal/model"
)

// FileStore keeps batches in a JSON array file on the device.
type FileStore struct {
	mu       sync.Mutex
	filePath string
}

// NewFileStore creates the parent directory if needed.
func NewFileStore(filePath string) (*FileStore, error) {
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create batch dir: %w", err)
		}
	}
	return &FileStore{filePath: filePath}, nil
}

// load reads the batch list. A missing or corrupt file reads as empty.
func (s *FileStore) load() []model.StorageBatch {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read stored batches: %v", err)
		}
		return nil
	}
	var batches []model.StorageBatch
	if err := json.Unmarshal(data, &batches); err != nil {
		log.Printf("[WARN] failed to parse stored batches: %v", err)
		return nil
	}
	return batches
}

func (s *FileStore) save(batches []model.StorageBatch) error {
	data, err := json.MarshalIndent(batches, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal batches: %w", err)
	}
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write batches: %w", err)
	}
	return os.Rename(tmp, s.filePath)
}

func (s *FileStore) ListBatches() ([]model.StorageBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batches := s.load()
	if batches == nil {
		batches = []model.StorageBatch{}
	}
	return batches, nil
}

func (s *FileStore) SaveBatch(b model.StorageBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	batches := s.load()
	for i := range batches {
		if batches[i].ID == b.ID {
			batches[i] = b
			return s.save(batches)
		}
	}
	return s.save(append(batches, b))
}

func (s *FileStore) UpdateStatus(id string, status model.BatchStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	batches := s.load()
	for i := range batches {
		if batches[i].ID == id {
			batches[i].Status = status
			return s.save(batches)
		}
	}
	return fmt.Errorf("update %s: %w", id, ErrBatchNotFound)
}

func (s *FileStore) Close() error { return nil }
