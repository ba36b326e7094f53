package settings

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
)

// Repository exposes persistence helpers for the settings key/value rows.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a settings repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var row models.AppSetting
	err := r.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return row.Value, nil
}

// Set upserts the row; settings are last-write-wins by design.
func (r *repositoryImpl) Set(ctx context.Context, key string, value json.RawMessage) error {
	row := models.AppSetting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}
