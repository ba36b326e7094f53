package stats

import (
	"context"
	"time"

	"github.com/lucasferrer/freshkeep-backend/internal/expiry"
	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
)

// ItemLister is the slice of the item store the aggregator needs.
type ItemLister interface {
	ListAll(ctx context.Context) ([]models.Item, error)
}

// Service computes summary counts and bucket partitions over the whole item
// collection. Everything is recomputed on each read; the collection is small
// and keeping an incremental index would only add an invariant to break.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
	Partition(ctx context.Context) (*Partition, error)
}

type service struct {
	lister ItemLister
}

// Summary carries the three bucket counts plus the collection total.
type Summary struct {
	Expired      int `json:"expired"`
	ExpiringSoon int `json:"expiringSoon"`
	Fresh        int `json:"fresh"`
	Total        int `json:"total"`
}

// Partition splits the collection into the three disjoint bucket lists. The
// lists preserve storage order within each bucket.
type Partition struct {
	Expired      []models.Item `json:"expired"`
	ExpiringSoon []models.Item `json:"expiringSoon"`
	Fresh        []models.Item `json:"fresh"`
}

// NewService wires the aggregator against the item store.
func NewService(lister ItemLister) (Service, error) {
	if lister == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "item lister required")
	}
	return &service{lister: lister}, nil
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	partition, err := s.Partition(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Expired:      len(partition.Expired),
		ExpiringSoon: len(partition.ExpiringSoon),
		Fresh:        len(partition.Fresh),
		Total:        len(partition.Expired) + len(partition.ExpiringSoon) + len(partition.Fresh),
	}, nil
}

func (s *service) Partition(ctx context.Context) (*Partition, error) {
	all, err := s.lister.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}

	now := time.Now().UTC()
	partition := &Partition{
		Expired:      []models.Item{},
		ExpiringSoon: []models.Item{},
		Fresh:        []models.Item{},
	}
	for _, item := range all {
		switch expiry.BucketDays(expiry.DaysUntil(item.ExpiryDate, now)) {
		case enums.ExpiryBucketExpired:
			partition.Expired = append(partition.Expired, item)
		case enums.ExpiryBucketExpiringSoon:
			partition.ExpiringSoon = append(partition.ExpiringSoon, item)
		default:
			partition.Fresh = append(partition.Fresh, item)
		}
	}
	return partition, nil
}
