package items

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	paginationpkg "github.com/lucasferrer/freshkeep-backend/pkg/pagination"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

type fakeRepository struct {
	createFn  func(ctx context.Context, item *models.Item) error
	getFn     func(ctx context.Context, id uuid.UUID) (*models.Item, error)
	listFn    func(ctx context.Context, params listItemsParams) ([]models.Item, *paginationpkg.Cursor, error)
	listAllFn func(ctx context.Context) ([]models.Item, error)
	updateFn  func(ctx context.Context, item *models.Item) error
	deleteFn  func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, item *models.Item) error {
	if f.createFn != nil {
		return f.createFn(ctx, item)
	}
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) List(ctx context.Context, params listItemsParams) ([]models.Item, *paginationpkg.Cursor, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, nil, nil
}

func (f *fakeRepository) ListAll(ctx context.Context) ([]models.Item, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepository) Update(ctx context.Context, item *models.Item) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, item)
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 0, nil
}

type fakeScheduler struct {
	scheduled []uuid.UUID
	cancelled []uuid.UUID
	fail      bool
}

func (f *fakeScheduler) ScheduleForItem(ctx context.Context, item *models.Item) error {
	if f.fail {
		return errors.New("scheduler unavailable")
	}
	f.scheduled = append(f.scheduled, item.ID)
	return nil
}

func (f *fakeScheduler) CancelForItem(ctx context.Context, itemID uuid.UUID) error {
	f.cancelled = append(f.cancelled, itemID)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "items-test", Output: io.Discard})
}

func newServiceWith(repo Repository, scheduler *fakeScheduler) Service {
	svc, err := NewService(repo, nil, scheduler, testLogger())
	if err != nil {
		panic(err)
	}
	return svc
}

func TestService_CreateConvertsDaysToDate(t *testing.T) {
	days := 5
	var stored *models.Item
	repo := &fakeRepository{
		createFn: func(ctx context.Context, item *models.Item) error {
			stored = item
			return nil
		},
	}
	scheduler := &fakeScheduler{}
	svc := newServiceWith(repo, scheduler)

	view, err := svc.Create(context.Background(), CreateParams{Name: "milk", DaysUntilExpiry: &days})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if stored == nil {
		t.Fatal("expected item to be persisted")
	}

	want := types.DateOf(time.Now().UTC()).AddDays(days)
	if !stored.ExpiryDate.Equal(want) {
		t.Fatalf("expected expiry %s, got %s", want, stored.ExpiryDate)
	}
	if stored.Category != enums.ItemCategoryOther {
		t.Fatalf("expected default category, got %s", stored.Category)
	}
	if view.Urgency.Tier != enums.UrgencyTierFresh {
		t.Fatalf("expected fresh tier for +5 days, got %s", view.Urgency.Tier)
	}
	if len(scheduler.scheduled) != 1 || scheduler.scheduled[0] != stored.ID {
		t.Fatalf("expected alerts scheduled for new item")
	}
}

func TestService_CreateRejectsMissingExpiry(t *testing.T) {
	svc := newServiceWith(&fakeRepository{}, &fakeScheduler{})

	_, err := svc.Create(context.Background(), CreateParams{Name: "milk"})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_CreateSchedulerFailureDoesNotBlockWrite(t *testing.T) {
	days := 2
	created := false
	repo := &fakeRepository{
		createFn: func(ctx context.Context, item *models.Item) error {
			created = true
			return nil
		},
	}
	svc := newServiceWith(repo, &fakeScheduler{fail: true})

	if _, err := svc.Create(context.Background(), CreateParams{Name: "yogurt", DaysUntilExpiry: &days}); err != nil {
		t.Fatalf("scheduler failure must not fail the create: %v", err)
	}
	if !created {
		t.Fatal("expected item persisted despite scheduler failure")
	}
}

func TestService_ListFilterByBucket(t *testing.T) {
	today := types.DateOf(time.Now().UTC())
	all := []models.Item{
		{ID: uuid.New(), Name: "old", ExpiryDate: today.AddDays(-2)},
		{ID: uuid.New(), Name: "soonish", ExpiryDate: today.AddDays(1)},
		{ID: uuid.New(), Name: "fresh", ExpiryDate: today.AddDays(10)},
	}
	repo := &fakeRepository{
		listAllFn: func(ctx context.Context) ([]models.Item, error) {
			return all, nil
		},
	}
	svc := newServiceWith(repo, &fakeScheduler{})

	result, err := svc.List(context.Background(), ListParams{Bucket: enums.ExpiryBucketExpired})
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].Name != "old" {
		t.Fatalf("expected only the expired item, got %+v", result.Items)
	}
	if result.Cursor != "" {
		t.Fatal("bucket filtered list should not return a cursor")
	}
}

func TestService_ListPaginates(t *testing.T) {
	first := models.Item{ID: uuid.New(), Name: "a", ExpiryDate: types.DateOf(time.Now()), CreatedAt: time.Now().Add(-time.Hour)}
	repo := &fakeRepository{
		listFn: func(ctx context.Context, params listItemsParams) ([]models.Item, *paginationpkg.Cursor, error) {
			return []models.Item{first}, &paginationpkg.Cursor{CreatedAt: first.CreatedAt, ID: first.ID}, nil
		},
	}
	svc := newServiceWith(repo, &fakeScheduler{})

	result, err := svc.List(context.Background(), ListParams{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(result.Items))
	}
	if result.Cursor == "" {
		t.Fatal("expected cursor for next page")
	}
	decoded, err := paginationpkg.ParseCursor(result.Cursor)
	if err != nil || decoded == nil || decoded.ID != first.ID {
		t.Fatalf("cursor should decode to the last row: %v / %v", decoded, err)
	}
}

func TestService_UpdateReschedulesOnExpiryChange(t *testing.T) {
	existing := &models.Item{
		ID:         uuid.New(),
		Name:       "cheese",
		Category:   enums.ItemCategoryDairy,
		ExpiryDate: types.NewDate(2026, time.June, 1),
	}
	repo := &fakeRepository{
		getFn: func(ctx context.Context, id uuid.UUID) (*models.Item, error) {
			copied := *existing
			return &copied, nil
		},
	}
	scheduler := &fakeScheduler{}
	svc := newServiceWith(repo, scheduler)

	newDate := types.NewDate(2026, time.June, 10)
	if _, err := svc.Update(context.Background(), existing.ID, UpdateParams{ExpiryDate: &newDate}); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatal("expected reschedule after expiry change")
	}

	// Touching only the name must not reschedule.
	name := "aged cheese"
	if _, err := svc.Update(context.Background(), existing.ID, UpdateParams{Name: &name}); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatal("name-only update should not reschedule alerts")
	}
}

func TestService_DeleteCancelsAlerts(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepository{
		deleteFn: func(ctx context.Context, got uuid.UUID) (int64, error) {
			if got != id {
				t.Fatalf("unexpected id %s", got)
			}
			return 1, nil
		},
	}
	scheduler := &fakeScheduler{}
	svc := newServiceWith(repo, scheduler)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if len(scheduler.cancelled) != 1 || scheduler.cancelled[0] != id {
		t.Fatal("expected alert cancellation for deleted item")
	}
}

func TestService_DeleteMissingItem(t *testing.T) {
	repo := &fakeRepository{
		deleteFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, nil
		},
	}
	svc := newServiceWith(repo, &fakeScheduler{})

	err := svc.Delete(context.Background(), uuid.New())
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
