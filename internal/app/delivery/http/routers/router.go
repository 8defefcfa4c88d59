package routers

import (
	"fmt"
	"net/http"

	"ehr-gateway-service/internal/app/config"
	"ehr-gateway-service/internal/app/delivery/http/controllers"
	"ehr-gateway-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

const legacyTokenPath = "/api/get-tokens"

type Controllers struct {
	Auth        *controllers.AuthController
	Patient     *controllers.PatientController
	Appointment *controllers.AppointmentController
	Slot        *controllers.SlotController
	Health      *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLog *logrus.Logger,
	metricsHandler http.Handler,
	ctrls *Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	if accessLog != nil {
		router.Use(middlewares.RequestLogger(accessLog))
	}
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Metrics)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", ctrls.Health.Liveness)
	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	// The unversioned token path predates the versioned API and stays for
	// existing clients.
	router.Post(legacyTokenPath, ctrls.Auth.AcquireTokens)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, ctrls.Auth)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.SessionScope)

				r.Route("/patients", func(r chi.Router) {
					attachPatientRoutes(r, ctrls.Patient)
				})

				r.Route("/appointments", func(r chi.Router) {
					attachAppointmentRoutes(r, ctrls.Appointment)
				})

				r.Route("/slots", func(r chi.Router) {
					attachSlotRoutes(r, ctrls.Slot)
				})
			})
		})
	})
}
