package feedback

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
)

// Repository exposes persistence helpers for feedback reports.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, entry *models.Feedback) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Feedback, error)
	List(ctx context.Context, status enums.FeedbackStatus) ([]models.Feedback, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.FeedbackStatus) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a feedback repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, entry *models.Feedback) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Feedback, error) {
	var entry models.Feedback
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repositoryImpl) List(ctx context.Context, status enums.FeedbackStatus) ([]models.Feedback, error) {
	query := r.db.WithContext(ctx).Model(&models.Feedback{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var entries []models.Feedback
	if err := query.Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.FeedbackStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Feedback{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
