package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

const defaultExpiryDayFireHour = 9

// TxRunner executes a function inside a database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service registers and cancels the per-item expiry alerts. Up to four
// instants per item: 3, 2 and 1 days before expiry at the time-of-day the
// schedule call runs, plus the expiry day itself at a fixed morning hour.
type Service interface {
	ScheduleForItem(ctx context.Context, item *models.Item) error
	CancelForItem(ctx context.Context, itemID uuid.UUID) error
	ListForItem(ctx context.Context, itemID uuid.UUID) ([]models.ScheduledAlert, error)
}

type service struct {
	repo     Repository
	tx       TxRunner
	fireHour int
	logg     *logger.Logger
	now      func() time.Time
}

// NewService wires the alert scheduler. fireHour is the local hour at which
// the expiry-day alert fires.
func NewService(repo Repository, tx TxRunner, fireHour int, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "alerts repository required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	if fireHour < 0 || fireHour > 23 {
		fireHour = defaultExpiryDayFireHour
	}
	return &service{
		repo:     repo,
		tx:       tx,
		fireHour: fireHour,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// AlertKey builds the stable registration key for one item/offset pair.
func AlertKey(itemID uuid.UUID, offset enums.AlertOffset) string {
	return fmt.Sprintf("%s-%s", itemID, offset)
}

// ScheduleForItem cancels any alerts previously registered for the item and
// inserts one alert per offset whose instant is still in the future. Past
// instants are silently skipped, never back-filled. Cancel and insert run in
// one transaction, so calling this twice for the same item and expiry date
// leaves exactly one alert per offset.
func (s *service) ScheduleForItem(ctx context.Context, item *models.Item) error {
	if item == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item required")
	}
	if item.ID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	if item.ExpiryDate.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "item expiry date required")
	}

	now := s.now().UTC()
	alerts := s.buildAlerts(item, now)

	err := s.runInTx(ctx, func(repo Repository) error {
		if _, err := repo.DeleteByItemID(ctx, item.ID); err != nil {
			return err
		}
		return repo.Insert(ctx, alerts)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "schedule item alerts")
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"item_id":     item.ID.String(),
		"expiry_date": item.ExpiryDate.String(),
		"scheduled":   len(alerts),
	})
	s.logg.Info(logCtx, "item alerts scheduled")
	return nil
}

func (s *service) buildAlerts(item *models.Item, now time.Time) []models.ScheduledAlert {
	alerts := make([]models.ScheduledAlert, 0, len(enums.AllAlertOffsets()))
	for _, offset := range enums.AllAlertOffsets() {
		fireAt := s.fireInstant(item, offset, now)
		if !fireAt.After(now) {
			continue
		}
		alerts = append(alerts, models.ScheduledAlert{
			ID:     uuid.New(),
			Key:    AlertKey(item.ID, offset),
			ItemID: item.ID,
			Offset: offset,
			Title:  alertTitle(item),
			Body:   alertBody(item, offset),
			FireAt: fireAt,
		})
	}
	return alerts
}

// fireInstant anchors pre-expiry offsets at the schedule call's time-of-day
// and the expiry-day alert at the configured morning hour.
func (s *service) fireInstant(item *models.Item, offset enums.AlertOffset, now time.Time) time.Time {
	fireDate := item.ExpiryDate.AddDays(-offset.DaysBefore())
	if offset == enums.AlertOffsetExpired {
		return fireDate.At(s.fireHour, 0, time.UTC)
	}
	date := fireDate.Time()
	return time.Date(date.Year(), date.Month(), date.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
}

func alertTitle(item *models.Item) string {
	return fmt.Sprintf("FreshKeep: %s", item.Name)
}

func alertBody(item *models.Item, offset enums.AlertOffset) string {
	switch offset {
	case enums.AlertOffset3Days:
		return fmt.Sprintf("%s expires in 3 days.", item.Name)
	case enums.AlertOffset2Days:
		return fmt.Sprintf("%s expires in 2 days.", item.Name)
	case enums.AlertOffset1Day:
		return fmt.Sprintf("%s expires tomorrow.", item.Name)
	default:
		return fmt.Sprintf("%s expires today.", item.Name)
	}
}

// CancelForItem removes every alert keyed to the item.
func (s *service) CancelForItem(ctx context.Context, itemID uuid.UUID) error {
	if itemID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	var removed int64
	err := s.runInTx(ctx, func(repo Repository) error {
		count, err := repo.DeleteByItemID(ctx, itemID)
		if err != nil {
			return err
		}
		removed = count
		return nil
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cancel item alerts")
	}
	if removed > 0 {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"item_id": itemID.String(),
			"removed": removed,
		})
		s.logg.Info(logCtx, "item alerts cancelled")
	}
	return nil
}

func (s *service) ListForItem(ctx context.Context, itemID uuid.UUID) ([]models.ScheduledAlert, error) {
	if itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	alerts, err := s.repo.ListByItemID(ctx, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list item alerts")
	}
	return alerts, nil
}

func (s *service) runInTx(ctx context.Context, fn func(repo Repository) error) error {
	if s.tx == nil {
		return fn(s.repo)
	}
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return fn(s.repo.WithTx(tx))
	})
}
