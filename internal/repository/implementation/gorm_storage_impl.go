package implementation

import (
	"context"
	"errors"
	"fmt"

	"prompt-manager/internal/model"
	"prompt-manager/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage stores each key as a row of the storage_entries table.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) contract.StorageRepository {
	return &GormStorage{
		db: db,
	}
}

func (r *GormStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var m model.StorageEntry
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", contract.ErrStorageUnavailable, err)
	}
	return string(m.Value), true, nil
}

func (r *GormStorage) Set(ctx context.Context, key string, value string) error {
	m := model.StorageEntry{
		Key:   key,
		Value: datatypes.JSON(value),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("%w: %v", contract.ErrStorageUnavailable, err)
	}
	return nil
}
