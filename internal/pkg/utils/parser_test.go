package utils

import (
	"testing"

	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchFilters(t *testing.T) {
	t.Run("Keeps Insertion Order", func(t *testing.T) {
		filters, err := ParseSearchFilters("given=John&active=true&family=Doe")

		require.NoError(t, err)
		expected := requests.SearchFilters{
			{Key: "given", Value: "John"},
			{Key: "active", Value: "true"},
			{Key: "family", Value: "Doe"},
		}
		assert.Equal(t, expected, filters, "filters should follow the query order")
	})

	t.Run("Decodes Escaped Values", func(t *testing.T) {
		filters, err := ParseSearchFilters("name=Mary%20Jane&date=ge2024-01-01T00%3A00%3A00Z")

		require.NoError(t, err)
		value, ok := filters.Get("name")
		assert.True(t, ok)
		assert.Equal(t, "Mary Jane", value)
		value, _ = filters.Get("date")
		assert.Equal(t, "ge2024-01-01T00:00:00Z", value)
	})

	t.Run("Keeps Repeated Keys", func(t *testing.T) {
		filters, err := ParseSearchFilters("date=2024-01-01&date2=le2024-02-01")

		require.NoError(t, err)
		assert.Len(t, filters, 2)
		assert.Equal(t, "date2", filters[1].Key)
	})

	t.Run("Empty Query", func(t *testing.T) {
		filters, err := ParseSearchFilters("")

		require.NoError(t, err)
		assert.Empty(t, filters)
		assert.False(t, filters.HasValues())
	})

	t.Run("Key Without Value", func(t *testing.T) {
		filters, err := ParseSearchFilters("given&&family=")

		require.NoError(t, err)
		assert.Len(t, filters, 2)
		assert.False(t, filters.HasValues(), "blank values should not count")
	})

	t.Run("Malformed Escape", func(t *testing.T) {
		_, err := ParseSearchFilters("given=%zz")

		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeValidationError))
	})
}

func TestParsePageNumber(t *testing.T) {
	page, err := ParsePageNumber("3")
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	_, err = ParsePageNumber("0")
	assert.Error(t, err, "page zero should be rejected")

	_, err = ParsePageNumber("abc")
	assert.Error(t, err, "non numeric page should be rejected")
}

func TestSessionJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, expiresAt, err := GenerateSessionJWT("session-123", secret, 1)
		require.NoError(t, err)
		assert.False(t, expiresAt.IsZero())

		sessionID, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, _, err := GenerateSessionJWT("session-123", secret, 1)
		require.NoError(t, err)

		_, err = ParseJWT(token, "other-secret")
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeNotAuthorized))
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, _, err := GenerateSessionJWT("session-123", secret, -1)
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err, "expired token should be rejected")
	})
}

func TestParseBearerToken(t *testing.T) {
	token, ok := ParseBearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = ParseBearerToken("Basic abc")
	assert.False(t, ok)

	_, ok = ParseBearerToken("Bearer   ")
	assert.False(t, ok)
}
