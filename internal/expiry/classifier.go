package expiry

import (
	"time"

	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

const (
	// soonUpperBound is the last day-count still labelled "Expiring Soon"
	// and the upper edge of both the summary bucket and the reminder window.
	soonUpperBound = 3

	// reminderLowerBound is one day wider than the summary "expired"
	// threshold. An item that expired yesterday still earns a reminder even
	// though the stats bucket already counts it as expired. The two
	// thresholds are distinct on purpose and must not be merged.
	reminderLowerBound = -1
)

// Classification is the full derived urgency view of a single expiry date
// against a reference instant.
type Classification struct {
	Days   int                `json:"daysUntilExpiry"`
	Tier   enums.UrgencyTier  `json:"tier"`
	Label  string             `json:"label"`
	Bucket enums.ExpiryBucket `json:"bucket"`
}

// DaysUntil computes the signed whole-day distance from now to the expiry
// date. Both sides are truncated to calendar days first, so the answer never
// depends on the time-of-day of the reference instant.
func DaysUntil(expiryDate types.Date, now time.Time) int {
	return expiryDate.DaysSince(types.DateOf(now))
}

// ClassifyDays maps a day count onto the five-valued urgency tier.
func ClassifyDays(days int) enums.UrgencyTier {
	switch {
	case days < 0:
		return enums.UrgencyTierExpired
	case days == 0:
		return enums.UrgencyTierToday
	case days == 1:
		return enums.UrgencyTierTomorrow
	case days <= soonUpperBound:
		return enums.UrgencyTierSoon
	default:
		return enums.UrgencyTierFresh
	}
}

// BucketDays collapses a day count onto the coarse three-way partition used
// for summary counts and list filtering.
func BucketDays(days int) enums.ExpiryBucket {
	switch {
	case days < 0:
		return enums.ExpiryBucketExpired
	case days <= soonUpperBound:
		return enums.ExpiryBucketExpiringSoon
	default:
		return enums.ExpiryBucketFresh
	}
}

// InReminderWindow reports whether a day count qualifies for the reminder
// modal. The window is -1..3 inclusive.
func InReminderWindow(days int) bool {
	return days >= reminderLowerBound && days <= soonUpperBound
}

// TierLabel returns the human display label for a tier.
func TierLabel(tier enums.UrgencyTier) string {
	switch tier {
	case enums.UrgencyTierExpired:
		return "Expired"
	case enums.UrgencyTierToday:
		return "Expires Today"
	case enums.UrgencyTierTomorrow:
		return "Expires Tomorrow"
	case enums.UrgencyTierSoon:
		return "Expiring Soon"
	default:
		return "Fresh"
	}
}

// Evaluate derives the complete classification for an expiry date.
func Evaluate(expiryDate types.Date, now time.Time) Classification {
	days := DaysUntil(expiryDate, now)
	tier := ClassifyDays(days)
	return Classification{
		Days:   days,
		Tier:   tier,
		Label:  TierLabel(tier),
		Bucket: BucketDays(days),
	}
}
