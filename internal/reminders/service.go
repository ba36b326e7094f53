package reminders

import (
	"context"
	"time"

	"github.com/lucasferrer/freshkeep-backend/internal/expiry"
	"github.com/lucasferrer/freshkeep-backend/internal/settings"
	"github.com/lucasferrer/freshkeep-backend/internal/speech"
	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

// ItemLister is the slice of the item store the trigger needs.
type ItemLister interface {
	ListAll(ctx context.Context) ([]models.Item, error)
}

// Reminder is the single surfaced item plus its derived urgency view.
type Reminder struct {
	Item  models.Item       `json:"item"`
	Days  int               `json:"daysUntilExpiry"`
	Tier  enums.UrgencyTier `json:"tier"`
	Label string            `json:"label"`
}

// Service scans the collection on each foreground event and surfaces at most
// one reminder.
type Service interface {
	Check(ctx context.Context) (*Reminder, error)
}

type service struct {
	lister   ItemLister
	settings settings.Service
	engine   speech.Engine
	logg     *logger.Logger
	delay    time.Duration
}

// NewService wires the reminder trigger. delay is the pause between the
// visual surfacing and the spoken message.
func NewService(lister ItemLister, settingsSvc settings.Service, engine speech.Engine, logg *logger.Logger, delay time.Duration) (Service, error) {
	if lister == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "item lister required")
	}
	if settingsSvc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "settings service required")
	}
	if engine == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "speech engine required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{
		lister:   lister,
		settings: settingsSvc,
		engine:   engine,
		logg:     logg,
		delay:    delay,
	}, nil
}

// Check returns the first item (in storage order) whose days-until-expiry
// falls inside the reminder window, or nil when nothing qualifies. The scan
// deliberately does not sort by urgency: first found wins, reproducibly.
func (s *service) Check(ctx context.Context) (*Reminder, error) {
	all, err := s.lister.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}

	now := time.Now().UTC()
	for _, item := range all {
		days := expiry.DaysUntil(item.ExpiryDate, now)
		if !expiry.InReminderWindow(days) {
			continue
		}

		tier := expiry.ClassifyDays(days)
		reminder := &Reminder{
			Item:  item,
			Days:  days,
			Tier:  tier,
			Label: expiry.TierLabel(tier),
		}
		s.maybeSpeak(ctx, reminder)
		return reminder, nil
	}
	return nil, nil
}

// maybeSpeak kicks off the voice side effect. It never blocks or fails the
// visual reminder; synthesis errors are logged and dropped.
func (s *service) maybeSpeak(ctx context.Context, reminder *Reminder) {
	voice := s.settings.Voice(ctx)
	if !voice.Enabled {
		return
	}

	message := speech.MessageFor(reminder.Tier, reminder.Item.Name, reminder.Days)
	req := speech.Request{
		Text:     message,
		Language: voice.Language,
		Rate:     voice.Rate,
		Pitch:    voice.Pitch,
		Volume:   voice.Volume,
	}

	// Detached from the request context: the caller's HTTP request will be
	// done long before the delay elapses.
	background := context.WithoutCancel(ctx)
	go func() {
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
		if err := s.engine.Speak(background, req); err != nil {
			itemCtx := s.logg.WithItemID(background, reminder.Item.ID.String())
			s.logg.Error(itemCtx, "speaking reminder", err)
		}
	}()
}
