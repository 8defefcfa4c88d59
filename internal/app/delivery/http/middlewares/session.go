package middlewares

import (
	"net/http"

	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// SessionScope binds the session carried by a bearer token to the request
// context when credentials are session scoped. Requests without a token pass
// through and fail later with NOT_AUTHORIZED when they need credentials.
func (m *Middlewares) SessionScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.InternalConfig.IsSessionScoped() {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := utils.ParseBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		sessionID, err := m.SessionService.ParseToken(token)
		if err != nil {
			m.Log.Warn("Rejected session token",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.Normalize(err, exceptions.ErrSessionInvalid))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSessionID(r.Context(), sessionID)))
	})
}
