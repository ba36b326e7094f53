package instance

import "os"

// GetID returns the alert worker instance identifier or a default value.
func GetID() string {
	if id := os.Getenv("FRESHKEEP_WORKER_ID"); id != "" {
		return id
	}
	return "alert-worker-0"
}
