package enums

import "fmt"

// SubscriptionPlan is the entitlement tier persisted in the singleton
// subscription record.
type SubscriptionPlan string

const (
	SubscriptionPlanFree     SubscriptionPlan = "free"
	SubscriptionPlanMonthly  SubscriptionPlan = "monthly"
	SubscriptionPlanYearly   SubscriptionPlan = "yearly"
	SubscriptionPlanLifetime SubscriptionPlan = "lifetime"
)

var validSubscriptionPlans = []SubscriptionPlan{
	SubscriptionPlanFree,
	SubscriptionPlanMonthly,
	SubscriptionPlanYearly,
	SubscriptionPlanLifetime,
}

// IsValid checks whether the given plan matches the canonical enum.
func (p SubscriptionPlan) IsValid() bool {
	for _, candidate := range validSubscriptionPlans {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseSubscriptionPlan converts raw strings into SubscriptionPlan.
func ParseSubscriptionPlan(value string) (SubscriptionPlan, error) {
	for _, candidate := range validSubscriptionPlans {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid subscription plan %q", value)
}
