package models

import (
	"time"

	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

// SubscriptionRowID is the primary key of the singleton subscription row.
const SubscriptionRowID = 1

// Subscription is the process-wide entitlement record, overwritten
// wholesale on change.
type Subscription struct {
	ID        uint                   `gorm:"primaryKey" json:"-"`
	Active    bool                   `gorm:"not null;default:false" json:"isSubscribed"`
	Plan      enums.SubscriptionPlan `gorm:"type:text;not null;default:'free'" json:"type"`
	ExpiresAt *types.Date            `gorm:"type:date" json:"expiresAt,omitempty"`
	UpdatedAt time.Time              `gorm:"autoUpdateTime" json:"-"`
}
