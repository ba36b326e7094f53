package speech

import (
	"fmt"

	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
)

// MessageFor renders the spoken reminder for one item. One template per
// urgency tier, five in total; the tier picks the template and the absolute
// day count fills it in.
func MessageFor(tier enums.UrgencyTier, itemName string, days int) string {
	switch tier {
	case enums.UrgencyTierExpired:
		return fmt.Sprintf("%s expired %s ago. Consider removing it.", itemName, pluralDays(-days))
	case enums.UrgencyTierToday:
		return fmt.Sprintf("%s expires today. Use it now.", itemName)
	case enums.UrgencyTierTomorrow:
		return fmt.Sprintf("%s expires tomorrow.", itemName)
	case enums.UrgencyTierSoon:
		return fmt.Sprintf("%s expires in %s.", itemName, pluralDays(days))
	default:
		return fmt.Sprintf("%s is still fresh, %s left.", itemName, pluralDays(days))
	}
}

func pluralDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
