package ratings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

const (
	minScore = 1
	maxScore = 5
)

// ItemChecker verifies the rated item exists before anything is written.
type ItemChecker interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
}

// Service defines per-item rating operations.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*models.Rating, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]models.Rating, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*models.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
	StatsForItem(ctx context.Context, itemID uuid.UUID) (*Stats, error)
}

type service struct {
	repo  Repository
	items ItemChecker
}

// CreateParams captures a new rating submission.
type CreateParams struct {
	ItemID  uuid.UUID
	Score   int
	Tags    []string
	Comment *string
}

// UpdateParams carries optional field changes; nil fields are left untouched.
type UpdateParams struct {
	Score   *int
	Tags    []string
	Comment *string
}

// Stats summarizes the ratings of one item. Average keeps two decimal places
// so five ratings of 4,4,4,4,5 read as 4.20 instead of a long float tail.
type Stats struct {
	Count    int             `json:"count"`
	Average  decimal.Decimal `json:"average"`
	TagCount map[string]int  `json:"tagCount"`
}

// NewService wires rating dependencies.
func NewService(repo Repository, items ItemChecker) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "ratings repository required")
	}
	if items == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "item checker required")
	}
	return &service{repo: repo, items: items}, nil
}

func validateScore(score int) error {
	if score < minScore || score > maxScore {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	return nil
}

func (s *service) Create(ctx context.Context, params CreateParams) (*models.Rating, error) {
	if params.ItemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	if err := validateScore(params.Score); err != nil {
		return nil, err
	}

	if _, err := s.items.GetByID(ctx, params.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check item")
	}

	rating := &models.Rating{
		ID:      uuid.New(),
		ItemID:  params.ItemID,
		Score:   params.Score,
		Tags:    types.StringList(params.Tags),
		Comment: params.Comment,
	}
	if rating.Tags == nil {
		rating.Tags = types.StringList{}
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create rating")
	}
	return rating, nil
}

func (s *service) ListByItem(ctx context.Context, itemID uuid.UUID) ([]models.Rating, error) {
	if itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	ratings, err := s.repo.ListByItemID(ctx, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list ratings")
	}
	return ratings, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*models.Rating, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating id required")
	}

	rating, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "rating not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get rating")
	}

	if params.Score != nil {
		if err := validateScore(*params.Score); err != nil {
			return nil, err
		}
		rating.Score = *params.Score
	}
	if params.Tags != nil {
		rating.Tags = types.StringList(params.Tags)
	}
	if params.Comment != nil {
		rating.Comment = params.Comment
	}

	if err := s.repo.Update(ctx, rating); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update rating")
	}
	return rating, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating id required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete rating")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "rating not found")
	}
	return nil
}

func (s *service) StatsForItem(ctx context.Context, itemID uuid.UUID) (*Stats, error) {
	ratings, err := s.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TagCount: map[string]int{}}
	if len(ratings) == 0 {
		return stats, nil
	}

	sum := decimal.Zero
	for _, rating := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(rating.Score)))
		for _, tag := range rating.Tags {
			stats.TagCount[tag]++
		}
	}
	stats.Count = len(ratings)
	stats.Average = sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(2)
	return stats, nil
}
