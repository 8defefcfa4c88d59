package routers

import (
	"ehr-gateway-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, slotController *controllers.SlotController) {
	router.Get("/", slotController.FindByFilters)
	router.Post("/", slotController.Create)
	router.Get("/page/{pageno}", slotController.FindByPage)
	router.Get("/{id}", slotController.FindByID)
	router.Put("/{id}", slotController.Update)
}
