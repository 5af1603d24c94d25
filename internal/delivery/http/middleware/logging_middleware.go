package middleware

import (
	"net/http"
	"time"

	"patients-care-api/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// AccessLog writes one log entry per request
func AccessLog(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &metrics.StatusRecorder{ResponseWriter: w, Status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.Status,
				"duration": time.Since(start).String(),
			}).Info("request")
		})
	}
}
