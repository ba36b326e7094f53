package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

// Rating is a per-item star rating with free-form tags.
type Rating struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"itemId"`
	Score     int              `gorm:"not null" json:"rating"`
	Tags      types.StringList `gorm:"type:text;not null" json:"tags"`
	Comment   *string          `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}
