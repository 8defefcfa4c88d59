package controllers

import (
	"net/http"
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	resourceController
}

func NewPatientController(logger *zap.Logger, entityUsecase contracts.EntityUsecase, requestTimeout time.Duration) *PatientController {
	return &PatientController{
		resourceController: resourceController{
			Log:            logger,
			EntityUsecase:  entityUsecase,
			RequestTimeout: requestTimeout,
			Resource:       models.ResourcePatient,
			Messages: resourceMessages{
				List:   constvars.GetPatientsSuccessMessage,
				Get:    constvars.GetPatientSuccessMessage,
				Create: constvars.CreatePatientSuccessMessage,
				Update: constvars.UpdatePatientSuccessMessage,
			},
		},
	}
}

// UpdatePatient applies the contact and demographic update form to a
// patient.
func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	id, err := utils.ParseResourceID(chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	form := new(requests.PatientUpdateForm)
	if err := decodeForm(r, form); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	payload, err := ctrl.EntityUsecase.UpdatePatient(ctx, id, form)
	if err != nil {
		ctrl.fail(ctx, w, requestID, "UpdatePatient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, payload)
}
