package enums

import "fmt"

// FeedbackType is the closed set of feedback categories. The store layer
// rejects anything outside the enum instead of persisting loose strings.
type FeedbackType string

const (
	FeedbackTypeBug         FeedbackType = "bug"
	FeedbackTypeFeature     FeedbackType = "feature"
	FeedbackTypeImprovement FeedbackType = "improvement"
	FeedbackTypeGeneral     FeedbackType = "general"
)

var validFeedbackTypes = []FeedbackType{
	FeedbackTypeBug,
	FeedbackTypeFeature,
	FeedbackTypeImprovement,
	FeedbackTypeGeneral,
}

// IsValid checks whether the given type matches the canonical enum.
func (f FeedbackType) IsValid() bool {
	for _, candidate := range validFeedbackTypes {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFeedbackType converts raw strings into FeedbackType.
func ParseFeedbackType(value string) (FeedbackType, error) {
	for _, candidate := range validFeedbackTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid feedback type %q", value)
}

// FeedbackStatus tracks triage state for submitted feedback.
type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "pending"
	FeedbackStatusReviewed FeedbackStatus = "reviewed"
	FeedbackStatusResolved FeedbackStatus = "resolved"
)

var validFeedbackStatuses = []FeedbackStatus{
	FeedbackStatusPending,
	FeedbackStatusReviewed,
	FeedbackStatusResolved,
}

// IsValid checks whether the given status matches the canonical enum.
func (f FeedbackStatus) IsValid() bool {
	for _, candidate := range validFeedbackStatuses {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFeedbackStatus converts raw strings into FeedbackStatus.
func ParseFeedbackStatus(value string) (FeedbackStatus, error) {
	for _, candidate := range validFeedbackStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid feedback status %q", value)
}
