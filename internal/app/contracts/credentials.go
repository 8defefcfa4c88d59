package contracts

import (
	"context"
	"time"

	"ehr-gateway-service/internal/app/models"
)

type CredentialStore interface {
	Save(ctx context.Context, key string, credentials models.Credentials, ttl time.Duration) error
	Load(ctx context.Context, key string) (*models.Credentials, error)
}

// CredentialProvider resolves the credential record that applies to the
// request carried by ctx.
type CredentialProvider interface {
	CredentialKey(ctx context.Context) (string, error)
	Load(ctx context.Context) (*models.Credentials, error)
}
