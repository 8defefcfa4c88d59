package credentials

import (
	"context"
	"fmt"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/utils"
)

type credentialProvider struct {
	Store   contracts.CredentialStore
	BaseKey string
	Scope   string
}

func NewCredentialProvider(store contracts.CredentialStore, baseKey, scope string) contracts.CredentialProvider {
	if baseKey == "" {
		baseKey = constvars.DefaultCredentialKey
	}
	return &credentialProvider{
		Store:   store,
		BaseKey: baseKey,
		Scope:   scope,
	}
}

// SessionKey is the key of the record owned by sessionID.
func SessionKey(baseKey, sessionID string) string {
	return fmt.Sprintf(constvars.SessionCredentialKeyFmt, baseKey, sessionID)
}

func (p *credentialProvider) CredentialKey(ctx context.Context) (string, error) {
	if p.Scope != constvars.CredentialScopeSession {
		return p.BaseKey, nil
	}

	sessionID := utils.GetSessionID(ctx)
	if sessionID == "" {
		return "", exceptions.ErrNotAuthorized(p.BaseKey)
	}
	return SessionKey(p.BaseKey, sessionID), nil
}

func (p *credentialProvider) Load(ctx context.Context) (*models.Credentials, error) {
	key, err := p.CredentialKey(ctx)
	if err != nil {
		return nil, err
	}
	return p.Store.Load(ctx, key)
}
