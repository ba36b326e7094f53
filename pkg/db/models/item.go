package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

// Item is one tracked perishable unit. Expired items are retained until the
// user deletes them; nothing relates ProductionDate to ExpiryDate.
type Item struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string             `gorm:"type:text;not null" json:"name"`
	Category       enums.ItemCategory `gorm:"type:text;not null;default:'other'" json:"category"`
	ProductionDate *types.Date        `gorm:"type:date" json:"productionDate,omitempty"`
	ExpiryDate     types.Date         `gorm:"type:date;not null;index" json:"expiryDate"`
	ImageURI       *string            `gorm:"type:text" json:"imageUri,omitempty"`
	CreatedAt      time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
}
