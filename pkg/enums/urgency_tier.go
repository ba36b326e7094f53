package enums

import "fmt"

// UrgencyTier is the five-valued display classification of an item's
// proximity to its expiry date. Every screen that labels an item derives
// the tier from the same day arithmetic so they can never disagree.
type UrgencyTier string

const (
	UrgencyTierExpired  UrgencyTier = "expired"
	UrgencyTierToday    UrgencyTier = "today"
	UrgencyTierTomorrow UrgencyTier = "tomorrow"
	UrgencyTierSoon     UrgencyTier = "soon"
	UrgencyTierFresh    UrgencyTier = "fresh"
)

var validUrgencyTiers = []UrgencyTier{
	UrgencyTierExpired,
	UrgencyTierToday,
	UrgencyTierTomorrow,
	UrgencyTierSoon,
	UrgencyTierFresh,
}

// IsValid checks whether the given tier matches the canonical enum.
func (u UrgencyTier) IsValid() bool {
	for _, candidate := range validUrgencyTiers {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUrgencyTier converts raw strings into UrgencyTier.
func ParseUrgencyTier(value string) (UrgencyTier, error) {
	for _, candidate := range validUrgencyTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid urgency tier %q", value)
}
