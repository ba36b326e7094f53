package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
)

// Feedback is a user-submitted report. Type and Status are validated
// against their enums before anything is written.
type Feedback struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	Type        enums.FeedbackType   `gorm:"type:text;not null" json:"type"`
	Title       string               `gorm:"type:text;not null" json:"title"`
	Description string               `gorm:"type:text;not null" json:"description"`
	Score       int                  `gorm:"not null" json:"rating"`
	Email       *string              `gorm:"type:text" json:"email,omitempty"`
	AppVersion  string               `gorm:"type:text;not null" json:"appVersion"`
	Status      enums.FeedbackStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"createdAt"`
}
