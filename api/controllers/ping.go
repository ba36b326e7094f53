package controllers

import (
	"net/http"

	"github.com/lucasferrer/freshkeep-backend/api/responses"
)

// PublicPing answers unauthenticated reachability probes.
func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"service": "freshkeep",
			"scope":   "public",
			"status":  "ok",
		})
	}
}
