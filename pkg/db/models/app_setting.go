package models

import (
	"encoding/json"
	"time"
)

// Setting keys mirror the original key-value layout of the client store.
const (
	SettingKeyNotifications = "notifications"
	SettingKeyVoice         = "voice"
	SettingKeyLanguage      = "language"
)

// AppSetting is a singleton key/value record holding JSON-encoded settings
// (notification toggle, voice options, display language).
type AppSetting struct {
	Key       string          `gorm:"type:text;primaryKey"`
	Value     json.RawMessage `gorm:"type:text;not null"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}
