package model

import "fmt"

// StorageType is the closed set of storage methods a batch can use.
type StorageType string

const (
	StorageSilo StorageType = "silo"
	StorageBag  StorageType = "bag"
)

// StorageTypes lists every valid storage type.
var StorageTypes = []StorageType{StorageSilo, StorageBag}

// ParseStorageType validates s against the closed set.
func ParseStorageType(s string) (StorageType, error) {
	switch st := StorageType(s); st {
	case StorageSilo, StorageBag:
		return st, nil
	}
	return "", fmt.Errorf("unknown storage type %q", s)
}

// BatchStatus tracks the lifecycle of a stored batch.
type BatchStatus string

const (
	StatusActive BatchStatus = "active"
	StatusSold   BatchStatus = "sold"
	StatusLost   BatchStatus = "lost"
)

// ParseBatchStatus validates s against the closed set.
func ParseBatchStatus(s string) (BatchStatus, error) {
	switch st := BatchStatus(s); st {
	case StatusActive, StatusSold, StatusLost:
		return st, nil
	}
	return "", fmt.Errorf("unknown batch status %q", s)
}

// StorageBatch is a tracked quantity of harvested crop.
type StorageBatch struct {
	ID          string      `json:"id"`
	CropType    string      `json:"cropType"`
	WeightKg    float64     `json:"weightKg"`
	StorageType StorageType `json:"storageType"`
	Status      BatchStatus `json:"status"`
	HarvestDate string      `json:"harvestDate"` // ISO 8601
	Synced      bool        `json:"synced,omitempty"`
}

// IsActive reports whether the batch is still in storage.
func (b StorageBatch) IsActive() bool {
	return b.Status == StatusActive
}
