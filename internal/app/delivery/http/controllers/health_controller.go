package controllers

import (
	"context"
	"net/http"
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

type HealthController struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
}

func NewHealthController(logger *zap.Logger, redisRepository contracts.RedisRepository) *HealthController {
	return &HealthController{
		Log:             logger,
		RedisRepository: redisRepository,
	}
}

// Liveness reports ready only while the credential store answers.
func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := ctrl.RedisRepository.Ping(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrHealthCheck(err))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, nil)
}
