package settings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

// LanguageAuto marks the display language as "resolve from locale at read
// time"; the resolved code is never written back.
const LanguageAuto = "auto"

// NotificationSettings is the process-wide alert toggle.
type NotificationSettings struct {
	Enabled bool `json:"enabled"`
}

// VoiceSettings controls the spoken reminder side effect.
type VoiceSettings struct {
	Enabled  bool    `json:"enabled"`
	Language string  `json:"language"`
	Rate     float64 `json:"rate"`
	Pitch    float64 `json:"pitch"`
	Volume   float64 `json:"volume"`
}

// LanguageSetting holds the display language code or "auto".
type LanguageSetting struct {
	Code string `json:"code"`
}

// NotificationUpdate carries a partial merge onto the stored record.
type NotificationUpdate struct {
	Enabled *bool `json:"enabled"`
}

// VoiceUpdate carries a partial merge onto the stored record. Nil fields are
// left at their current values.
type VoiceUpdate struct {
	Enabled  *bool    `json:"enabled"`
	Language *string  `json:"language"`
	Rate     *float64 `json:"rate"`
	Pitch    *float64 `json:"pitch"`
	Volume   *float64 `json:"volume"`
}

// Service reads and writes the singleton settings records. Reads never fail:
// a missing or unreadable row degrades to the defaults so callers always get
// a usable value.
type Service interface {
	Notifications(ctx context.Context) NotificationSettings
	UpdateNotifications(ctx context.Context, update NotificationUpdate) (NotificationSettings, error)
	Voice(ctx context.Context) VoiceSettings
	UpdateVoice(ctx context.Context, update VoiceUpdate) (VoiceSettings, error)
	Language(ctx context.Context) LanguageSetting
	SetLanguage(ctx context.Context, code string) (LanguageSetting, error)
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService wires settings dependencies.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "settings repository required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func defaultNotifications() NotificationSettings {
	return NotificationSettings{Enabled: true}
}

func defaultVoice() VoiceSettings {
	return VoiceSettings{Enabled: true, Language: LanguageAuto, Rate: 0.8, Pitch: 1.0, Volume: 0.8}
}

func defaultLanguage() LanguageSetting {
	return LanguageSetting{Code: LanguageAuto}
}

func (s *service) Notifications(ctx context.Context) NotificationSettings {
	out := defaultNotifications()
	s.read(ctx, models.SettingKeyNotifications, &out)
	return out
}

func (s *service) UpdateNotifications(ctx context.Context, update NotificationUpdate) (NotificationSettings, error) {
	current := s.Notifications(ctx)
	if update.Enabled != nil {
		current.Enabled = *update.Enabled
	}
	if err := s.write(ctx, models.SettingKeyNotifications, current); err != nil {
		return NotificationSettings{}, err
	}
	return current, nil
}

func (s *service) Voice(ctx context.Context) VoiceSettings {
	out := defaultVoice()
	s.read(ctx, models.SettingKeyVoice, &out)
	return out
}

func (s *service) UpdateVoice(ctx context.Context, update VoiceUpdate) (VoiceSettings, error) {
	current := s.Voice(ctx)
	if update.Enabled != nil {
		current.Enabled = *update.Enabled
	}
	if update.Language != nil {
		if strings.TrimSpace(*update.Language) == "" {
			return VoiceSettings{}, pkgerrors.New(pkgerrors.CodeValidation, "voice language must not be empty")
		}
		current.Language = *update.Language
	}
	if update.Rate != nil {
		current.Rate = *update.Rate
	}
	if update.Pitch != nil {
		current.Pitch = *update.Pitch
	}
	if update.Volume != nil {
		current.Volume = *update.Volume
	}
	if err := s.write(ctx, models.SettingKeyVoice, current); err != nil {
		return VoiceSettings{}, err
	}
	return current, nil
}

func (s *service) Language(ctx context.Context) LanguageSetting {
	out := defaultLanguage()
	s.read(ctx, models.SettingKeyLanguage, &out)
	if out.Code == "" {
		out = defaultLanguage()
	}
	return out
}

func (s *service) SetLanguage(ctx context.Context, code string) (LanguageSetting, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return LanguageSetting{}, pkgerrors.New(pkgerrors.CodeValidation, "language code required")
	}
	setting := LanguageSetting{Code: code}
	if err := s.write(ctx, models.SettingKeyLanguage, setting); err != nil {
		return LanguageSetting{}, err
	}
	return setting, nil
}

// read fills out from the stored row, leaving the passed-in defaults alone
// when the row is missing or unreadable.
func (s *service) read(ctx context.Context, key string, out any) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ctx = s.logg.WithFields(ctx, map[string]any{"setting": key, "error": err.Error()})
			s.logg.Warn(ctx, "reading setting, falling back to defaults")
		}
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{"setting": key, "error": err.Error()})
		s.logg.Warn(ctx, "decoding setting, falling back to defaults")
	}
}

func (s *service) write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode setting")
	}
	if err := s.repo.Set(ctx, key, raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store setting")
	}
	return nil
}
