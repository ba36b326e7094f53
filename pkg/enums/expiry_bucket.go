package enums

import "fmt"

// ExpiryBucket is the coarse three-way partition used for summary counts
// and list filtering.
type ExpiryBucket string

const (
	ExpiryBucketExpired      ExpiryBucket = "expired"
	ExpiryBucketExpiringSoon ExpiryBucket = "expiring_soon"
	ExpiryBucketFresh        ExpiryBucket = "fresh"
)

var validExpiryBuckets = []ExpiryBucket{
	ExpiryBucketExpired,
	ExpiryBucketExpiringSoon,
	ExpiryBucketFresh,
}

// IsValid checks whether the given bucket matches the canonical enum.
func (b ExpiryBucket) IsValid() bool {
	for _, candidate := range validExpiryBuckets {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseExpiryBucket converts raw strings into ExpiryBucket.
func ParseExpiryBucket(value string) (ExpiryBucket, error) {
	for _, candidate := range validExpiryBuckets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid expiry bucket %q", value)
}
