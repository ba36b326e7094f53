package ratings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
)

type fakeRepository struct {
	rows map[uuid.UUID]*models.Rating
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[uuid.UUID]*models.Rating{}}
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, rating *models.Rating) error {
	copied := *rating
	f.rows[rating.ID] = &copied
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	rating, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *rating
	return &copied, nil
}

func (f *fakeRepository) ListByItemID(ctx context.Context, itemID uuid.UUID) ([]models.Rating, error) {
	var out []models.Rating
	for _, rating := range f.rows {
		if rating.ItemID == itemID {
			out = append(out, *rating)
		}
	}
	return out, nil
}

func (f *fakeRepository) Update(ctx context.Context, rating *models.Rating) error {
	copied := *rating
	f.rows[rating.ID] = &copied
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

type fakeItems struct {
	known map[uuid.UUID]bool
}

func (f *fakeItems) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if !f.known[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Item{ID: id}, nil
}

func newServiceWith(repo Repository, items ItemChecker) Service {
	svc, err := NewService(repo, items)
	if err != nil {
		panic(err)
	}
	return svc
}

func TestService_CreateValidatesScore(t *testing.T) {
	itemID := uuid.New()
	svc := newServiceWith(newFakeRepository(), &fakeItems{known: map[uuid.UUID]bool{itemID: true}})

	for _, score := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), CreateParams{ItemID: itemID, Score: score})
		appErr := pkgerrors.As(err)
		if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
			t.Fatalf("score %d should fail validation, got %v", score, err)
		}
	}
}

func TestService_CreateRejectsUnknownItem(t *testing.T) {
	svc := newServiceWith(newFakeRepository(), &fakeItems{known: map[uuid.UUID]bool{}})

	_, err := svc.Create(context.Background(), CreateParams{ItemID: uuid.New(), Score: 4})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for unknown item, got %v", err)
	}
}

func TestService_CreateAndList(t *testing.T) {
	itemID := uuid.New()
	repo := newFakeRepository()
	svc := newServiceWith(repo, &fakeItems{known: map[uuid.UUID]bool{itemID: true}})
	ctx := context.Background()

	comment := "kept well"
	created, err := svc.Create(ctx, CreateParams{
		ItemID:  itemID,
		Score:   4,
		Tags:    []string{"fresh", "tasty"},
		Comment: &comment,
	})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected assigned id")
	}

	listed, err := svc.ListByItem(ctx, itemID)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(listed) != 1 || listed[0].Score != 4 || len(listed[0].Tags) != 2 {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}

func TestService_UpdatePartial(t *testing.T) {
	itemID := uuid.New()
	repo := newFakeRepository()
	svc := newServiceWith(repo, &fakeItems{known: map[uuid.UUID]bool{itemID: true}})
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateParams{ItemID: itemID, Score: 3, Tags: []string{"ok"}})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	score := 5
	updated, err := svc.Update(ctx, created.ID, UpdateParams{Score: &score})
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if updated.Score != 5 {
		t.Fatalf("expected score 5, got %d", updated.Score)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "ok" {
		t.Fatalf("tags should be untouched: %+v", updated.Tags)
	}
}

func TestService_DeleteMissing(t *testing.T) {
	svc := newServiceWith(newFakeRepository(), &fakeItems{known: map[uuid.UUID]bool{}})

	err := svc.Delete(context.Background(), uuid.New())
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_StatsForItem(t *testing.T) {
	itemID := uuid.New()
	repo := newFakeRepository()
	svc := newServiceWith(repo, &fakeItems{known: map[uuid.UUID]bool{itemID: true}})
	ctx := context.Background()

	for _, fixture := range []struct {
		score int
		tags  []string
	}{
		{4, []string{"fresh"}},
		{4, []string{"fresh", "tasty"}},
		{5, nil},
	} {
		if _, err := svc.Create(ctx, CreateParams{ItemID: itemID, Score: fixture.score, Tags: fixture.tags}); err != nil {
			t.Fatalf("unexpected create error: %v", err)
		}
	}

	stats, err := svc.StatsForItem(ctx, itemID)
	if err != nil {
		t.Fatalf("unexpected stats error: %v", err)
	}
	if stats.Count != 3 {
		t.Fatalf("expected 3 ratings, got %d", stats.Count)
	}
	if got := stats.Average.String(); got != "4.33" {
		t.Fatalf("expected average 4.33, got %s", got)
	}
	if stats.TagCount["fresh"] != 2 || stats.TagCount["tasty"] != 1 {
		t.Fatalf("unexpected tag counts: %+v", stats.TagCount)
	}
}

func TestService_StatsEmpty(t *testing.T) {
	itemID := uuid.New()
	svc := newServiceWith(newFakeRepository(), &fakeItems{known: map[uuid.UUID]bool{itemID: true}})

	stats, err := svc.StatsForItem(context.Background(), itemID)
	if err != nil {
		t.Fatalf("unexpected stats error: %v", err)
	}
	if stats.Count != 0 || !stats.Average.IsZero() {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}
