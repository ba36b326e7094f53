package subscriptions

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

type fakeRepository struct {
	record *models.Subscription
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) Get(ctx context.Context) (*models.Subscription, error) {
	if f.record == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *f.record
	return &copied, nil
}

func (f *fakeRepository) Upsert(ctx context.Context, record *models.Subscription) error {
	copied := *record
	f.record = &copied
	return nil
}

func newServiceWith(repo Repository) Service {
	svc, err := NewService(repo)
	if err != nil {
		panic(err)
	}
	return svc
}

func TestService_GetDefaultsToFreeInactive(t *testing.T) {
	svc := newServiceWith(&fakeRepository{})

	record, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if record.Active || record.Plan != enums.SubscriptionPlanFree {
		t.Fatalf("expected free/inactive default, got %+v", record)
	}
}

func TestService_UpdateOverwritesWholesale(t *testing.T) {
	repo := &fakeRepository{}
	svc := newServiceWith(repo)
	ctx := context.Background()

	expires := types.DateOf(time.Now().AddDate(0, 1, 0))
	if _, err := svc.Update(ctx, UpdateParams{Active: true, Plan: enums.SubscriptionPlanMonthly, ExpiresAt: &expires}); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}

	// Second write replaces everything including the expiry date.
	updated, err := svc.Update(ctx, UpdateParams{Active: true, Plan: enums.SubscriptionPlanLifetime})
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if updated.ExpiresAt != nil {
		t.Fatal("wholesale overwrite should clear the previous expiry date")
	}

	stored, _ := svc.Get(ctx)
	if stored.Plan != enums.SubscriptionPlanLifetime || !stored.Active {
		t.Fatalf("unexpected stored record: %+v", stored)
	}
}

func TestService_UpdateRejectsInvalidPlan(t *testing.T) {
	svc := newServiceWith(&fakeRepository{})

	_, err := svc.Update(context.Background(), UpdateParams{Plan: "weekly"})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_UpdateRejectsActiveFreePlan(t *testing.T) {
	svc := newServiceWith(&fakeRepository{})

	_, err := svc.Update(context.Background(), UpdateParams{Active: true, Plan: enums.SubscriptionPlanFree})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
