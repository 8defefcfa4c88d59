package session

import (
	"time"

	"ehr-gateway-service/internal/app/config"
	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/pkg/utils"
)

type sessionService struct {
	Secret        string
	ExpTimeInHour int
}

func NewSessionService(internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		Secret:        internalConfig.JWT.Secret,
		ExpTimeInHour: internalConfig.JWT.ExpTimeInHour,
	}
}

func (svc *sessionService) NewSession() string {
	return utils.GenerateSessionID()
}

func (svc *sessionService) IssueToken(sessionID string) (string, time.Time, error) {
	return utils.GenerateSessionJWT(sessionID, svc.Secret, svc.ExpTimeInHour)
}

func (svc *sessionService) ParseToken(token string) (string, error) {
	return utils.ParseJWT(token, svc.Secret)
}

// TTL is how long a session's credential record is kept. It matches the
// lifetime of the session token.
func (svc *sessionService) TTL() time.Duration {
	return time.Duration(svc.ExpTimeInHour) * time.Hour
}
