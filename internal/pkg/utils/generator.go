package utils

import (
	"time"

	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateSessionJWT signs a session token that expires jwtExpiryTime hours
// from now. The expiry is returned alongside the token.
func GenerateSessionJWT(sessionID, secret string, jwtExpiryTime int) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.JWTClaimSessionID: sessionID,
		"exp":                       expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, exceptions.ErrTokenGenerate(err)
	}

	return tokenString, expiresAt, nil
}
