package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"userportal/pkg/clientip"
)

// RequestLogger tags each request with a generated ID and logs method, path,
// status, client IP and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log.Printf("[%s] %s %s %d %s %s", requestID, r.Method, r.URL.Path, rec.status, clientip.RealClientIP(r), time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
