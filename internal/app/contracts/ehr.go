package contracts

import (
	"context"

	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

type EHRClient interface {
	Do(ctx context.Context, resource models.Resource, method, url string, body interface{}) (json.RawMessage, error)
}

type EHRQueryBuilder interface {
	EntityURL(resource models.Resource) string
	PageURL(resource models.Resource, page int) string
	ByIDURL(resource models.Resource, id string) string
	SearchURL(resource models.Resource, filters requests.SearchFilters) string
	OAuthGrantURL() string
	AppointmentTypeSystem() string
}

type EHROAuthClient interface {
	PasswordGrant(ctx context.Context, request *requests.AcquireTokens) (*responses.OAuthToken, error)
}
