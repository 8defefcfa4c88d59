package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	RequestTimeout time.Duration
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, requestTimeout time.Duration) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		RequestTimeout: requestTimeout,
	}
}

// AcquireTokens exchanges a username and password for upstream tokens and
// caches them. In session scope the response carries the session token the
// caller must send as a bearer token afterwards.
func (ctrl *AuthController) AcquireTokens(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.AcquireTokens called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.AcquireTokens)
	if err := decodeForm(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.AcquireTokens(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.AcquireTokens failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if response == nil {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AcquireTokensSuccessMessage, nil)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AcquireTokensSuccessMessage, response)
}
