package routers

import (
	"ehr-gateway-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *controllers.AuthController) {
	router.Post("/tokens", authController.AcquireTokens)
}
