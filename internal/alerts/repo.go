package alerts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
)

// Repository exposes persistence helpers for scheduled alerts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Insert(ctx context.Context, alerts []models.ScheduledAlert) error
	DeleteByItemID(ctx context.Context, itemID uuid.UUID) (int64, error)
	ListByItemID(ctx context.Context, itemID uuid.UUID) ([]models.ScheduledAlert, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]models.ScheduledAlert, error)
	MarkSent(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error)
	CountPending(ctx context.Context, now time.Time) (int64, error)
	DeleteSentOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an alerts repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Insert(ctx context.Context, alerts []models.ScheduledAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&alerts).Error
}

func (r *repositoryImpl) DeleteByItemID(ctx context.Context, itemID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&models.ScheduledAlert{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repositoryImpl) ListByItemID(ctx context.Context, itemID uuid.UUID) ([]models.ScheduledAlert, error) {
	var alerts []models.ScheduledAlert
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("fire_at ASC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *repositoryImpl) ListDue(ctx context.Context, now time.Time, limit int) ([]models.ScheduledAlert, error) {
	var alerts []models.ScheduledAlert
	query := r.db.WithContext(ctx).
		Where("sent_at IS NULL AND fire_at <= ?", now).
		Order("fire_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *repositoryImpl) MarkSent(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Model(&models.ScheduledAlert{}).
		Where("id IN ? AND sent_at IS NULL", ids).
		UpdateColumn("sent_at", now)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repositoryImpl) CountPending(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ScheduledAlert{}).
		Where("sent_at IS NULL AND fire_at > ?", now).
		Count(&count).Error
	return count, err
}

func (r *repositoryImpl) DeleteSentOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("sent_at IS NOT NULL AND sent_at < ?", cutoff).
		Delete(&models.ScheduledAlert{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
