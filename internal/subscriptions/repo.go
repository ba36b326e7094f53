package subscriptions

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
)

// Repository exposes persistence helpers for the subscription singleton.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Get(ctx context.Context) (*models.Subscription, error)
	Upsert(ctx context.Context, record *models.Subscription) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a subscriptions repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Get(ctx context.Context) (*models.Subscription, error) {
	var record models.Subscription
	err := r.db.WithContext(ctx).First(&record, "id = ?", models.SubscriptionRowID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert overwrites the singleton row wholesale.
func (r *repositoryImpl) Upsert(ctx context.Context, record *models.Subscription) error {
	record.ID = models.SubscriptionRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"active", "plan", "expires_at", "updated_at"}),
		}).
		Create(record).Error
}
