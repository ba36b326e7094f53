package enums

import "fmt"

// AlertOffset names how far ahead of the expiry date a scheduled alert
// fires. The string values are embedded in alert keys ("{itemID}-{offset}")
// and must stay stable.
type AlertOffset string

const (
	AlertOffset3Days   AlertOffset = "3days"
	AlertOffset2Days   AlertOffset = "2days"
	AlertOffset1Day    AlertOffset = "1days"
	AlertOffsetExpired AlertOffset = "expired"
)

var validAlertOffsets = []AlertOffset{
	AlertOffset3Days,
	AlertOffset2Days,
	AlertOffset1Day,
	AlertOffsetExpired,
}

// AllAlertOffsets returns the offsets in scheduling order.
func AllAlertOffsets() []AlertOffset {
	offsets := make([]AlertOffset, len(validAlertOffsets))
	copy(offsets, validAlertOffsets)
	return offsets
}

// DaysBefore returns how many days before the expiry date the offset fires.
func (a AlertOffset) DaysBefore() int {
	switch a {
	case AlertOffset3Days:
		return 3
	case AlertOffset2Days:
		return 2
	case AlertOffset1Day:
		return 1
	default:
		return 0
	}
}

// IsValid checks whether the given offset matches the canonical enum.
func (a AlertOffset) IsValid() bool {
	for _, candidate := range validAlertOffsets {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAlertOffset converts raw strings into AlertOffset.
func ParseAlertOffset(value string) (AlertOffset, error) {
	for _, candidate := range validAlertOffsets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid alert offset %q", value)
}
