package controllers

import (
	"net/http"
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AppointmentController struct {
	resourceController
}

func NewAppointmentController(logger *zap.Logger, entityUsecase contracts.EntityUsecase, requestTimeout time.Duration) *AppointmentController {
	return &AppointmentController{
		resourceController: resourceController{
			Log:            logger,
			EntityUsecase:  entityUsecase,
			RequestTimeout: requestTimeout,
			Resource:       models.ResourceAppointment,
			Messages: resourceMessages{
				List:   constvars.GetAppointmentsSuccessMessage,
				Get:    constvars.GetAppointmentSuccessMessage,
				Create: constvars.CreateAppointmentSuccessMessage,
				Update: constvars.UpdateAppointmentSuccessMessage,
			},
		},
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	form := new(requests.AppointmentForm)
	if err := decodeForm(r, form); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	payload, err := ctrl.EntityUsecase.BookAppointment(ctx, form)
	if err != nil {
		ctrl.fail(ctx, w, requestID, "CreateAppointment", err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, payload)
}

func (ctrl *AppointmentController) AppointmentTypes(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentTypesSuccessMessage, ctrl.EntityUsecase.AppointmentTypes())
}
