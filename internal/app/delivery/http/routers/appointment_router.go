package routers

import (
	"ehr-gateway-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindByFilters)
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/types", appointmentController.AppointmentTypes)
	router.Get("/page/{pageno}", appointmentController.FindByPage)
	router.Get("/{id}", appointmentController.FindByID)
	router.Put("/{id}", appointmentController.Update)
}
