package contracts

import (
	"time"
)

type SessionService interface {
	NewSession() (sessionID string)
	IssueToken(sessionID string) (token string, expiresAt time.Time, err error)
	ParseToken(token string) (sessionID string, err error)
	TTL() time.Duration
}
