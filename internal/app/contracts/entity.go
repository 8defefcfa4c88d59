package contracts

import (
	"context"

	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/dto/responses"
	"ehr-gateway-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

type EntityUsecase interface {
	FetchByID(ctx context.Context, resource models.Resource, id string) (json.RawMessage, error)
	FetchByPage(ctx context.Context, resource models.Resource, page int) (json.RawMessage, error)
	FetchByFilters(ctx context.Context, resource models.Resource, filters requests.SearchFilters) (json.RawMessage, error)
	Create(ctx context.Context, resource models.Resource, body json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, resource models.Resource, id string, body json.RawMessage) (json.RawMessage, error)
	CreateAppointment(ctx context.Context, payload *fhir_dto.Appointment) (json.RawMessage, error)
	BookAppointment(ctx context.Context, form *requests.AppointmentForm) (json.RawMessage, error)
	UpdatePatient(ctx context.Context, id string, form *requests.PatientUpdateForm) (json.RawMessage, error)
	AppointmentTypes() []responses.AppointmentType
}
