package entities

import (
	"context"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/app/services/shared/metrics"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/dto/responses"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/fhir_dto"
	"ehr-gateway-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type entityUsecase struct {
	EHRClient contracts.EHRClient
	Queries   contracts.EHRQueryBuilder
	Metrics   *metrics.UpstreamMetrics
	Log       *zap.Logger
}

func NewEntityUsecase(
	ehrClient contracts.EHRClient,
	queries contracts.EHRQueryBuilder,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.EntityUsecase {
	return &entityUsecase{
		EHRClient: ehrClient,
		Queries:   queries,
		Metrics:   upstreamMetrics,
		Log:       logger,
	}
}

// normalize keeps ApiErrors as they are and reports anything else as a
// failure of the named entry point.
func normalize(err error, entryPoint string) error {
	return exceptions.Normalize(err, func(err error) *exceptions.ApiError {
		return exceptions.ErrServerAction(err, entryPoint)
	})
}

func (uc *entityUsecase) FetchByID(ctx context.Context, resource models.Resource, id string) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entityUsecase.FetchByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource.String()),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if !resource.IsValid() {
		return nil, exceptions.ErrUnsupportedResource(resource.String())
	}

	payload, err := uc.EHRClient.Do(ctx, resource, constvars.MethodGet, uc.Queries.ByIDURL(resource, id), nil)
	if err != nil {
		return nil, normalize(err, "FetchByID")
	}
	return payload, nil
}

func (uc *entityUsecase) FetchByPage(ctx context.Context, resource models.Resource, page int) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entityUsecase.FetchByPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource.String()),
		zap.Int(constvars.LoggingPageKey, page),
	)

	if !resource.IsValid() {
		return nil, exceptions.ErrUnsupportedResource(resource.String())
	}

	payload, err := uc.EHRClient.Do(ctx, resource, constvars.MethodGet, uc.Queries.PageURL(resource, page), nil)
	if err != nil {
		return nil, normalize(err, "FetchByPage")
	}
	return payload, nil
}

// FetchByFilters searches resource with filters in the given order. A
// patient search without any filter value lists active patients.
func (uc *entityUsecase) FetchByFilters(ctx context.Context, resource models.Resource, filters requests.SearchFilters) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entityUsecase.FetchByFilters called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource.String()),
		zap.Int(constvars.LoggingQueryParamsKey, len(filters)),
	)

	if !resource.IsValid() {
		return nil, exceptions.ErrUnsupportedResource(resource.String())
	}

	if resource == models.ResourcePatient && !filters.HasValues() {
		filters = requests.SearchFilters{}.Add(constvars.FhirSearchParamActive, "true")
	}

	payload, err := uc.EHRClient.Do(ctx, resource, constvars.MethodGet, uc.Queries.SearchURL(resource, filters), nil)
	if err != nil {
		return nil, normalize(err, "FetchByFilters")
	}
	return payload, nil
}

func (uc *entityUsecase) Create(ctx context.Context, resource models.Resource, body json.RawMessage) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entityUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource.String()),
	)

	if !resource.IsValid() {
		return nil, exceptions.ErrUnsupportedResource(resource.String())
	}

	payload, err := uc.EHRClient.Do(ctx, resource, constvars.MethodPost, uc.Queries.EntityURL(resource), body)
	if err != nil {
		return nil, normalize(err, "Create")
	}
	return payload, nil
}

func (uc *entityUsecase) Update(ctx context.Context, resource models.Resource, id string, body json.RawMessage) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entityUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource.String()),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if !resource.IsValid() {
		return nil, exceptions.ErrUnsupportedResource(resource.String())
	}

	payload, err := uc.EHRClient.Do(ctx, resource, constvars.MethodPut, uc.Queries.ByIDURL(resource, id), body)
	if err != nil {
		return nil, normalize(err, "Update")
	}
	return payload, nil
}

// CreateAppointment books only when a free slot matches the requested start
// (and type, when given). The check and the create are separate upstream
// calls, so a slot can still be taken in between.
func (uc *entityUsecase) CreateAppointment(ctx context.Context, payload *fhir_dto.Appointment) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entityUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	filters := requests.SearchFilters{}.
		Add(constvars.FhirSearchParamStatus, constvars.FhirSlotStatusFree).
		Add(constvars.FhirSearchParamStart, payload.Start)
	if code := appointmentTypeCode(payload); code != "" {
		filters = filters.Add(constvars.FhirSearchParamAppointmentType, code)
	}

	slotPayload, err := uc.EHRClient.Do(ctx, models.ResourceSlot, constvars.MethodGet, uc.Queries.SearchURL(models.ResourceSlot, filters), nil)
	if err != nil {
		return nil, normalize(err, "CreateAppointment")
	}

	slotCount, err := countEntries(slotPayload)
	if err != nil {
		return nil, exceptions.ErrServerAction(err, "CreateAppointment")
	}
	uc.Log.Info("entityUsecase.CreateAppointment slot search finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, slotCount),
	)

	if slotCount == 0 {
		uc.Metrics.ObserveSlotRejection()
		return nil, exceptions.ErrNoSlotAvailable(nil)
	}

	created, err := uc.EHRClient.Do(ctx, models.ResourceAppointment, constvars.MethodPost, uc.Queries.EntityURL(models.ResourceAppointment), payload)
	if err != nil {
		return nil, normalize(err, "CreateAppointment")
	}

	uc.Log.Info("entityUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return created, nil
}

func (uc *entityUsecase) BookAppointment(ctx context.Context, form *requests.AppointmentForm) (json.RawMessage, error) {
	payload, err := BuildAppointmentPayload(form, uc.Queries.AppointmentTypeSystem())
	if err != nil {
		return nil, err
	}
	return uc.CreateAppointment(ctx, payload)
}

func (uc *entityUsecase) UpdatePatient(ctx context.Context, id string, form *requests.PatientUpdateForm) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entityUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	patient := BuildPatientUpdate(id, form)
	payload, err := uc.EHRClient.Do(ctx, models.ResourcePatient, constvars.MethodPut, uc.Queries.ByIDURL(models.ResourcePatient, id), patient)
	if err != nil {
		return nil, normalize(err, "UpdatePatient")
	}
	return payload, nil
}

func (uc *entityUsecase) AppointmentTypes() []responses.AppointmentType {
	types := make([]responses.AppointmentType, len(knownAppointmentTypes))
	copy(types, knownAppointmentTypes)
	return types
}

// countEntries reads the number of entries in a search bundle. An empty
// payload counts as no entries.
func countEntries(payload json.RawMessage) (int, error) {
	if len(payload) == 0 {
		return 0, nil
	}
	var bundle fhir_dto.Bundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		return 0, err
	}
	return len(bundle.Entry), nil
}
