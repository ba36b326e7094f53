package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
)

// ScheduledAlert is one registered platform alert for an item. Key is
// "{itemID}-{offset}" and unique, so rescheduling can never duplicate an
// offset.
type ScheduledAlert struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Key       string            `gorm:"type:text;not null;uniqueIndex" json:"key"`
	ItemID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"itemId"`
	Offset    enums.AlertOffset `gorm:"column:offset_tag;type:text;not null" json:"offset"`
	Title     string            `gorm:"type:text;not null" json:"title"`
	Body      string            `gorm:"type:text;not null" json:"body"`
	FireAt    time.Time         `gorm:"not null;index" json:"fireAt"`
	SentAt    *time.Time        `json:"sentAt,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"createdAt"`
}
