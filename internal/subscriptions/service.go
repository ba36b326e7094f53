package subscriptions

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

// Service reads and overwrites the process-wide entitlement record.
type Service interface {
	Get(ctx context.Context) (*models.Subscription, error)
	Update(ctx context.Context, params UpdateParams) (*models.Subscription, error)
}

type service struct {
	repo Repository
}

// UpdateParams is the full replacement state; the record is overwritten
// wholesale on every change.
type UpdateParams struct {
	Active    bool
	Plan      enums.SubscriptionPlan
	ExpiresAt *types.Date
}

// NewService wires subscription dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "subscriptions repository required")
	}
	return &service{repo: repo}, nil
}

// Get returns the stored record, or the free/inactive default when nothing
// has been written yet.
func (s *service) Get(ctx context.Context) (*models.Subscription, error) {
	record, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Subscription{
				ID:   models.SubscriptionRowID,
				Plan: enums.SubscriptionPlanFree,
			}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get subscription")
	}
	return record, nil
}

func (s *service) Update(ctx context.Context, params UpdateParams) (*models.Subscription, error) {
	plan := params.Plan
	if plan == "" {
		plan = enums.SubscriptionPlanFree
	}
	if !plan.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid subscription plan")
	}
	if params.Active && plan == enums.SubscriptionPlanFree {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "active subscription requires a paid plan")
	}

	record := &models.Subscription{
		ID:        models.SubscriptionRowID,
		Active:    params.Active,
		Plan:      plan,
		ExpiresAt: params.ExpiresAt,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store subscription")
	}
	return record, nil
}
