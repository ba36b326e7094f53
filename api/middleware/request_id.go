package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"

	// Client-supplied ids longer than this are replaced rather than echoed
	// into every log line.
	maxRequestIDLength = 64
)

// RequestID tags each request with an id, honoring a sane client-supplied
// one so mobile clients can correlate retries.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" || len(reqID) > maxRequestIDLength {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
