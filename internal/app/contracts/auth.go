package contracts

import (
	"context"

	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	AcquireTokens(ctx context.Context, request *requests.AcquireTokens) (*responses.AcquireTokens, error)
}
