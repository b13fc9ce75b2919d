package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"HarvestGuard/internal/model"
)

// ErrBatchNotFound is returned when a batch id is unknown.
var ErrBatchNotFound = errors.New("batch not found")

// Store persists storage batches.
type Store interface {
	ListBatches() ([]model.StorageBatch, error)
	SaveBatch(b model.StorageBatch) error
	UpdateStatus(id string, status model.BatchStatus) error
	Close() error
}

// NewBatch builds an active batch with a fresh id. An empty harvestDate means today.
func NewBatch(cropType string, weightKg float64, storageType model.StorageType, harvestDate string) (model.StorageBatch, error) {
	cropType = strings.TrimSpace(cropType)
	if cropType == "" {
		return model.StorageBatch{}, fmt.Errorf("crop type is required")
	}
	if weightKg <= 0 {
		return model.StorageBatch{}, fmt.Errorf("weight must be positive, got %v", weightKg)
	}
	if _, err := model.ParseStorageType(string(storageType)); err != nil {
		return model.StorageBatch{}, err
	}
	if harvestDate == "" {
		harvestDate = time.Now().Format("2006-01-02")
	} else if _, err := parseHarvestDate(harvestDate); err != nil {
		return model.StorageBatch{}, err
	}
	return model.StorageBatch{
		ID:          uuid.NewString(),
		CropType:    cropType,
		WeightKg:    weightKg,
		StorageType: storageType,
		Status:      model.StatusActive,
		HarvestDate: harvestDate,
	}, nil
}

// parseHarvestDate accepts a calendar date or a full RFC 3339 timestamp.
func parseHarvestDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("harvest date %q is not ISO 8601", s)
	}
	return t, nil
}
