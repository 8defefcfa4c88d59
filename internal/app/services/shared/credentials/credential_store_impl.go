package credentials

import (
	"context"
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type credentialStore struct {
	Redis contracts.RedisRepository
	Log   *zap.Logger
}

func NewCredentialStore(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.CredentialStore {
	return &credentialStore{
		Redis: redisRepository,
		Log:   logger,
	}
}

// Save overwrites the record under key with all three fields. Concurrent
// saves to the same key are last-writer-wins.
func (s *credentialStore) Save(ctx context.Context, key string, credentials models.Credentials, ttl time.Duration) error {
	s.Log.Info("credentialStore.Save called",
		zap.String(constvars.LoggingCredentialKey, key),
	)

	err := s.Redis.SetHash(ctx, key, map[string]interface{}{
		constvars.CredentialFieldAPIKey:  credentials.APIKey,
		constvars.CredentialFieldAccess:  credentials.AccessToken,
		constvars.CredentialFieldRefresh: credentials.RefreshToken,
	}, ttl)
	if err != nil {
		s.Log.Error("credentialStore.Save error saving credentials",
			zap.String(constvars.LoggingCredentialKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Load returns NOT_AUTHORIZED when the record is absent or lacks the api key
// or the access token.
func (s *credentialStore) Load(ctx context.Context, key string) (*models.Credentials, error) {
	data, err := s.Redis.GetHash(ctx, key)
	if err != nil {
		s.Log.Error("credentialStore.Load error reading credentials",
			zap.String(constvars.LoggingCredentialKey, key),
			zap.Error(err),
		)
		return nil, exceptions.ErrCredentialStore(err)
	}

	credentials := &models.Credentials{
		APIKey:       data[constvars.CredentialFieldAPIKey],
		AccessToken:  data[constvars.CredentialFieldAccess],
		RefreshToken: data[constvars.CredentialFieldRefresh],
	}
	if !credentials.IsComplete() {
		return nil, exceptions.ErrNotAuthorized(key)
	}
	return credentials, nil
}
