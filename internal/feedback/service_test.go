package feedback

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
)

type fakeRepository struct {
	rows map[uuid.UUID]*models.Feedback
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[uuid.UUID]*models.Feedback{}}
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, entry *models.Feedback) error {
	copied := *entry
	f.rows[entry.ID] = &copied
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Feedback, error) {
	entry, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *entry
	return &copied, nil
}

func (f *fakeRepository) List(ctx context.Context, status enums.FeedbackStatus) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, entry := range f.rows {
		if status == "" || entry.Status == status {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.FeedbackStatus) (int64, error) {
	entry, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	entry.Status = status
	return 1, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func newServiceWith(repo Repository) Service {
	svc, err := NewService(repo)
	if err != nil {
		panic(err)
	}
	return svc
}

func TestService_SubmitDefaultsToGeneralPending(t *testing.T) {
	repo := newFakeRepository()
	svc := newServiceWith(repo)

	entry, err := svc.Submit(context.Background(), SubmitParams{
		Title:       "great app",
		Description: "keeps my fridge honest",
		Score:       5,
		AppVersion:  "1.4.2",
	})
	if err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if entry.Type != enums.FeedbackTypeGeneral {
		t.Fatalf("expected general type, got %s", entry.Type)
	}
	if entry.Status != enums.FeedbackStatusPending {
		t.Fatalf("expected pending status, got %s", entry.Status)
	}
}

func TestService_SubmitValidation(t *testing.T) {
	svc := newServiceWith(newFakeRepository())
	ctx := context.Background()

	cases := []SubmitParams{
		{Type: "rant", Title: "t", Description: "d", Score: 3},
		{Title: "", Description: "d", Score: 3},
		{Title: "t", Description: "", Score: 3},
		{Title: "t", Description: "d", Score: 0},
		{Title: "t", Description: "d", Score: 6},
	}
	for i, params := range cases {
		_, err := svc.Submit(ctx, params)
		appErr := pkgerrors.As(err)
		if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
			t.Fatalf("case %d should fail validation, got %v", i, err)
		}
	}
}

func TestService_ListFilterByStatus(t *testing.T) {
	repo := newFakeRepository()
	svc := newServiceWith(repo)
	ctx := context.Background()

	first, _ := svc.Submit(ctx, SubmitParams{Title: "a", Description: "d", Score: 4, AppVersion: "1.0"})
	if _, err := svc.Submit(ctx, SubmitParams{Title: "b", Description: "d", Score: 2, AppVersion: "1.0"}); err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateStatus(ctx, first.ID, enums.FeedbackStatusResolved); err != nil {
		t.Fatalf("unexpected status update error: %v", err)
	}

	pending, err := svc.List(ctx, enums.FeedbackStatusPending)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(pending) != 1 || pending[0].Title != "b" {
		t.Fatalf("unexpected pending list: %+v", pending)
	}

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
}

func TestService_UpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := newServiceWith(newFakeRepository())

	err := svc.UpdateStatus(context.Background(), uuid.New(), "archived")
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_DeleteRemovesEntry(t *testing.T) {
	repo := newFakeRepository()
	svc := newServiceWith(repo)
	ctx := context.Background()

	entry, err := svc.Submit(ctx, SubmitParams{Title: "t", Description: "d", Score: 3, AppVersion: "1.0"})
	if err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if err := svc.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	remaining, _ := svc.List(ctx, "")
	if len(remaining) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(remaining))
	}

	err = svc.Delete(ctx, entry.ID)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestService_UpdateStatusMissingEntry(t *testing.T) {
	svc := newServiceWith(newFakeRepository())

	err := svc.UpdateStatus(context.Background(), uuid.New(), enums.FeedbackStatusReviewed)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
