package models

import "time"

// StorageEntry is one key of one client's key-value namespace
type StorageEntry struct {
	Namespace string    `json:"namespace" gorm:"primaryKey;size:64"`
	EntryKey  string    `json:"key" gorm:"primaryKey;size:64"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
