package storage

import (
	"context"
	"errors"
	"fmt"

	"food-cart-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm persists namespaces as rows of models.StorageEntry.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Namespace(ctx context.Context, clientID string) Store {
	return &gormStore{db: g.db.WithContext(ctx), ns: clientID}
}

type gormStore struct {
	db *gorm.DB
	ns string
}

func (s *gormStore) Get(key string) (string, bool, error) {
	var entry models.StorageEntry
	err := s.db.Where("namespace = ? AND entry_key = ?", s.ns, key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *gormStore) Set(key, value string) error {
	entry := models.StorageEntry{Namespace: s.ns, EntryKey: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *gormStore) Delete(key string) error {
	err := s.db.Where("namespace = ? AND entry_key = ?", s.ns, key).
		Delete(&models.StorageEntry{}).Error
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
