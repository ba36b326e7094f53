package reminders

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lucasferrer/freshkeep-backend/internal/settings"
	"github.com/lucasferrer/freshkeep-backend/internal/speech"
	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

type fakeLister struct {
	items []models.Item
	err   error
}

func (f *fakeLister) ListAll(ctx context.Context) ([]models.Item, error) {
	return f.items, f.err
}

type fakeSettings struct {
	voice settings.VoiceSettings
}

func (f *fakeSettings) Notifications(ctx context.Context) settings.NotificationSettings {
	return settings.NotificationSettings{Enabled: true}
}

func (f *fakeSettings) UpdateNotifications(ctx context.Context, update settings.NotificationUpdate) (settings.NotificationSettings, error) {
	return settings.NotificationSettings{}, nil
}

func (f *fakeSettings) Voice(ctx context.Context) settings.VoiceSettings {
	return f.voice
}

func (f *fakeSettings) UpdateVoice(ctx context.Context, update settings.VoiceUpdate) (settings.VoiceSettings, error) {
	return settings.VoiceSettings{}, nil
}

func (f *fakeSettings) Language(ctx context.Context) settings.LanguageSetting {
	return settings.LanguageSetting{Code: settings.LanguageAuto}
}

func (f *fakeSettings) SetLanguage(ctx context.Context, code string) (settings.LanguageSetting, error) {
	return settings.LanguageSetting{Code: code}, nil
}

type fakeEngine struct {
	spoken chan speech.Request
	fail   bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{spoken: make(chan speech.Request, 1)}
}

func (f *fakeEngine) Speak(ctx context.Context, req speech.Request) error {
	if f.fail {
		return context.DeadlineExceeded
	}
	f.spoken <- req
	return nil
}

func (f *fakeEngine) Stop(ctx context.Context) error { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "reminders-test", Output: io.Discard})
}

func item(name string, daysFromToday int) models.Item {
	return models.Item{
		ID:         uuid.New(),
		Name:       name,
		ExpiryDate: types.DateOf(time.Now().UTC()).AddDays(daysFromToday),
	}
}

func newServiceWith(lister ItemLister, voice settings.VoiceSettings, engine speech.Engine) Service {
	svc, err := NewService(lister, &fakeSettings{voice: voice}, engine, testLogger(), 0)
	if err != nil {
		panic(err)
	}
	return svc
}

func TestCheck_SurfacesFirstMatchInStorageOrder(t *testing.T) {
	// Both qualify; the first in storage order wins even though the second
	// is more urgent.
	lister := &fakeLister{items: []models.Item{
		item("bread", 3),
		item("milk", 0),
	}}
	svc := newServiceWith(lister, settings.VoiceSettings{}, newFakeEngine())

	reminder, err := svc.Check(context.Background())
	if err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}
	if reminder == nil {
		t.Fatal("expected a reminder")
	}
	if reminder.Item.Name != "bread" {
		t.Fatalf("expected first match, got %q", reminder.Item.Name)
	}
	if reminder.Tier != enums.UrgencyTierSoon || reminder.Label != "Expiring Soon" {
		t.Fatalf("unexpected classification: %+v", reminder)
	}
}

func TestCheck_IncludesExpiredYesterday(t *testing.T) {
	lister := &fakeLister{items: []models.Item{item("eggs", -1)}}
	svc := newServiceWith(lister, settings.VoiceSettings{}, newFakeEngine())

	reminder, err := svc.Check(context.Background())
	if err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}
	if reminder == nil || reminder.Days != -1 {
		t.Fatalf("item expired yesterday is still reminder-worthy: %+v", reminder)
	}
	if reminder.Tier != enums.UrgencyTierExpired {
		t.Fatalf("expected expired tier, got %s", reminder.Tier)
	}
}

func TestCheck_SkipsOutsideWindow(t *testing.T) {
	lister := &fakeLister{items: []models.Item{
		item("ancient", -4),
		item("distant", 9),
	}}
	svc := newServiceWith(lister, settings.VoiceSettings{}, newFakeEngine())

	reminder, err := svc.Check(context.Background())
	if err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}
	if reminder != nil {
		t.Fatalf("nothing in window, got %+v", reminder)
	}
}

func TestCheck_SpeaksWhenVoiceEnabled(t *testing.T) {
	lister := &fakeLister{items: []models.Item{item("milk", 0)}}
	engine := newFakeEngine()
	voice := settings.VoiceSettings{Enabled: true, Language: "en", Rate: 0.9, Pitch: 1.0, Volume: 1.0}
	svc := newServiceWith(lister, voice, engine)

	if _, err := svc.Check(context.Background()); err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}

	select {
	case req := <-engine.spoken:
		if req.Text != "milk expires today. Use it now." {
			t.Fatalf("unexpected spoken text %q", req.Text)
		}
		if req.Language != "en" || req.Rate != 0.9 {
			t.Fatalf("voice options not applied: %+v", req)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a spoken reminder")
	}
}

func TestCheck_SilentWhenVoiceDisabled(t *testing.T) {
	lister := &fakeLister{items: []models.Item{item("milk", 0)}}
	engine := newFakeEngine()
	svc := newServiceWith(lister, settings.VoiceSettings{Enabled: false}, engine)

	if _, err := svc.Check(context.Background()); err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}

	select {
	case req := <-engine.spoken:
		t.Fatalf("voice disabled but spoke %q", req.Text)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCheck_SpeechFailureDoesNotAffectReminder(t *testing.T) {
	lister := &fakeLister{items: []models.Item{item("milk", 1)}}
	engine := newFakeEngine()
	engine.fail = true
	voice := settings.VoiceSettings{Enabled: true, Language: "en"}
	svc := newServiceWith(lister, voice, engine)

	reminder, err := svc.Check(context.Background())
	if err != nil {
		t.Fatalf("speech failure must not fail the check: %v", err)
	}
	if reminder == nil {
		t.Fatal("expected the visual reminder regardless of speech failure")
	}
}
