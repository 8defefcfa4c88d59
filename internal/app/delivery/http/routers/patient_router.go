package routers

import (
	"ehr-gateway-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindByFilters)
	router.Post("/", patientController.Create)
	router.Get("/page/{pageno}", patientController.FindByPage)
	router.Get("/{id}", patientController.FindByID)
	router.Put("/{id}", patientController.UpdatePatient)
}
