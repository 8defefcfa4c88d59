package controllers

import (
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type SlotController struct {
	resourceController
}

func NewSlotController(logger *zap.Logger, entityUsecase contracts.EntityUsecase, requestTimeout time.Duration) *SlotController {
	return &SlotController{
		resourceController: resourceController{
			Log:            logger,
			EntityUsecase:  entityUsecase,
			RequestTimeout: requestTimeout,
			Resource:       models.ResourceSlot,
			Messages: resourceMessages{
				List:   constvars.GetSlotsSuccessMessage,
				Get:    constvars.GetSlotSuccessMessage,
				Create: constvars.CreateSlotSuccessMessage,
				Update: constvars.UpdateSlotSuccessMessage,
			},
		},
	}
}
