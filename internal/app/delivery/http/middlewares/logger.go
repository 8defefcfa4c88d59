package middlewares

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes the one-line access log.
func (m *Middlewares) RequestLogger(log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)
			duration := time.Since(start)

			log.Printf(`{%s} | {%s} | {%s} ==> {%s} | {%d} | {%s}`, time.Now().UTC().Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, rec.statusCode, duration)
		})
	}
}
