package items

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/internal/expiry"
	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	"github.com/lucasferrer/freshkeep-backend/pkg/pagination"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

// AlertScheduler registers and cancels expiry alerts for an item. Scheduling
// is best effort: failures are logged and never block the item write.
type AlertScheduler interface {
	ScheduleForItem(ctx context.Context, item *models.Item) error
	CancelForItem(ctx context.Context, itemID uuid.UUID) error
}

// TxRunner executes a function inside a database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines item CRUD plus the expiry-derived views over single items.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*ItemView, error)
	Get(ctx context.Context, id uuid.UUID) (*ItemView, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*ItemView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	tx        TxRunner
	scheduler AlertScheduler
	logg      *logger.Logger
}

// CreateParams captures the entry flow. The expiry date arrives either as an
// absolute date or as a whole number of days from now, converted at creation
// time.
type CreateParams struct {
	Name            string
	Category        enums.ItemCategory
	DaysUntilExpiry *int
	ExpiryDate      *types.Date
	ProductionDate  *types.Date
	ImageURI        *string
}

// UpdateParams carries the edit flow's optional field changes. Nil fields are
// left untouched.
type UpdateParams struct {
	Name           *string
	Category       *enums.ItemCategory
	ExpiryDate     *types.Date
	ProductionDate *types.Date
	ImageURI       *string
}

// ListParams configures pagination and the optional bucket filter.
type ListParams struct {
	Limit  int
	Cursor string
	Bucket enums.ExpiryBucket
}

// ItemView is an item joined with its urgency classification at read time.
type ItemView struct {
	models.Item
	Urgency expiry.Classification `json:"urgency"`
}

// ListResult wraps returned items and the cursor for the next page. Bucket
// filtered lists are unpaginated (the filter is a pure pass over the whole
// collection) and carry no cursor.
type ListResult struct {
	Items  []ItemView `json:"items"`
	Cursor string     `json:"cursor"`
}

// NewService wires item dependencies.
func NewService(repo Repository, tx TxRunner, scheduler AlertScheduler, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "items repository required")
	}
	if scheduler == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "alert scheduler required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{repo: repo, tx: tx, scheduler: scheduler, logg: logg}, nil
}

func (s *service) Create(ctx context.Context, params CreateParams) (*ItemView, error) {
	if params.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name required")
	}

	now := time.Now().UTC()
	expiryDate, err := resolveExpiryDate(params, now)
	if err != nil {
		return nil, err
	}

	category := params.Category
	if category == "" {
		category = enums.ItemCategoryOther
	}
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid item category")
	}

	item := &models.Item{
		ID:             uuid.New(),
		Name:           params.Name,
		Category:       category,
		ProductionDate: params.ProductionDate,
		ExpiryDate:     expiryDate,
		ImageURI:       params.ImageURI,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create item")
	}

	s.scheduleAlerts(ctx, item)

	view := s.view(*item, now)
	return &view, nil
}

func resolveExpiryDate(params CreateParams, now time.Time) (types.Date, error) {
	if params.ExpiryDate != nil && !params.ExpiryDate.IsZero() {
		return *params.ExpiryDate, nil
	}
	if params.DaysUntilExpiry == nil {
		return types.Date{}, pkgerrors.New(pkgerrors.CodeValidation, "expiry date or days until expiry required")
	}
	if *params.DaysUntilExpiry < 0 {
		return types.Date{}, pkgerrors.New(pkgerrors.CodeValidation, "days until expiry must not be negative")
	}
	return types.DateOf(now).AddDays(*params.DaysUntilExpiry), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get item")
	}
	view := s.view(*item, time.Now().UTC())
	return &view, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	now := time.Now().UTC()

	if params.Bucket != "" {
		if !params.Bucket.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid bucket filter")
		}
		all, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
		}
		views := make([]ItemView, 0, len(all))
		for _, item := range all {
			view := s.view(item, now)
			if view.Urgency.Bucket == params.Bucket {
				views = append(views, view)
			}
		}
		return &ListResult{Items: views}, nil
	}

	query := listItemsParams{Limit: params.Limit}
	if params.Cursor != "" {
		cursor, err := pagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.Cursor = cursor
	}

	rows, next, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}

	views := make([]ItemView, 0, len(rows))
	for _, item := range rows {
		views = append(views, s.view(item, now))
	}

	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(*next)
	}
	return &ListResult{Items: views, Cursor: cursor}, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*ItemView, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get item")
	}

	expiryChanged := false
	if params.Name != nil {
		if *params.Name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name required")
		}
		item.Name = *params.Name
	}
	if params.Category != nil {
		if !params.Category.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid item category")
		}
		item.Category = *params.Category
	}
	if params.ExpiryDate != nil && !params.ExpiryDate.IsZero() {
		if !item.ExpiryDate.Equal(*params.ExpiryDate) {
			expiryChanged = true
		}
		item.ExpiryDate = *params.ExpiryDate
	}
	if params.ProductionDate != nil {
		item.ProductionDate = params.ProductionDate
	}
	if params.ImageURI != nil {
		item.ImageURI = params.ImageURI
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update item")
	}

	if expiryChanged {
		s.scheduleAlerts(ctx, item)
	}

	view := s.view(*item, time.Now().UTC())
	return &view, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}

	var affected int64
	run := func(repo Repository) error {
		count, err := repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		affected = count
		return nil
	}

	var err error
	if s.tx != nil {
		err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			return run(s.repo.WithTx(tx))
		})
	} else {
		err = run(s.repo)
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
	}

	// A dangling platform alert for a deleted item is a defect, so the
	// cancel happens even though the row delete already cleared the table.
	if err := s.scheduler.CancelForItem(ctx, id); err != nil {
		s.logg.Error(s.logg.WithItemID(ctx, id.String()), "cancelling alerts for deleted item", err)
	}
	return nil
}

// scheduleAlerts runs the cancel-then-register pass. Item persistence and
// alert scheduling are deliberately not transactional with each other.
func (s *service) scheduleAlerts(ctx context.Context, item *models.Item) {
	if err := s.scheduler.ScheduleForItem(ctx, item); err != nil {
		s.logg.Error(s.logg.WithItemID(ctx, item.ID.String()), "scheduling item alerts", err)
	}
}

func (s *service) view(item models.Item, now time.Time) ItemView {
	return ItemView{
		Item:    item,
		Urgency: expiry.Evaluate(item.ExpiryDate, now),
	}
}
