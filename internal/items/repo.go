package items

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/pagination"
)

// Repository exposes persistence helpers for tracked items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	List(ctx context.Context, params listItemsParams) ([]models.Item, *pagination.Cursor, error)
	ListAll(ctx context.Context) ([]models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an items repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

type listItemsParams struct {
	Limit  int
	Cursor *pagination.Cursor
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List pages in storage order (created_at ascending) so callers iterate items
// in the order they were added.
func (r *repositoryImpl) List(ctx context.Context, params listItemsParams) ([]models.Item, *pagination.Cursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)
	query := r.db.WithContext(ctx).Model(&models.Item{})
	if params.Cursor != nil {
		query = query.Where("(created_at, id) > (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)
	}

	var items []models.Item
	if err := query.Order("created_at ASC, id ASC").Limit(limit).Find(&items).Error; err != nil {
		return nil, nil, err
	}

	if len(items) > normalized {
		items = items[:normalized]
		last := items[len(items)-1]
		return items, &pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}, nil
	}
	return items, nil, nil
}

func (r *repositoryImpl) ListAll(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repositoryImpl) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes the item plus its ratings and any still-scheduled alerts.
// The three deletes run against the same handle so WithTx callers get a
// single atomic removal.
func (r *repositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", id).
		Delete(&models.Rating{}).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", id).
		Delete(&models.ScheduledAlert{}).Error; err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
