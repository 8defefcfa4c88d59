package middlewares

import (
	"errors"
	"net/http"
	"time"

	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit limits inbound requests per client IP to APP_MAX_REQUEST per
// APP_MAX_TIME_REQUESTS_PER_SECONDS window.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New(r.RemoteAddr)))
		}),
	)
}
