package utils

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", exceptions.ErrSessionInvalid(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims[constvars.JWTClaimSessionID].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", exceptions.ErrSessionInvalid(nil)
}

// ParseBearerToken extracts the token from an Authorization header value.
func ParseBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
	return token, token != ""
}

// ParseSearchFilters decodes a raw query string into filters in the order
// the parameters appear. url.ParseQuery is not used because it loses order.
func ParseSearchFilters(rawQuery string) (requests.SearchFilters, error) {
	filters := requests.SearchFilters{}
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, exceptions.ErrURLParamValidation(err, rawKey)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, exceptions.ErrURLParamValidation(err, key)
		}
		if key == "" {
			continue
		}
		filters = filters.Add(key, value)
	}
	return filters, nil
}

func ParsePageNumber(param string) (int, error) {
	page, err := strconv.Atoi(param)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, constvars.URLParamPageNo)
	}
	if page < 1 {
		return 0, exceptions.ErrURLParamValidation(errors.New("page must be positive"), constvars.URLParamPageNo)
	}
	return page, nil
}

func ParseResourceID(param string) (string, error) {
	id := strings.TrimSpace(param)
	if id == "" {
		return "", exceptions.ErrURLParamValidation(errors.New("empty id"), constvars.URLParamID)
	}
	return id, nil
}
