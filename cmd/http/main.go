package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ehr-gateway-service/internal/app/config"
	"ehr-gateway-service/internal/app/delivery/http/controllers"
	"ehr-gateway-service/internal/app/delivery/http/middlewares"
	"ehr-gateway-service/internal/app/delivery/http/routers"
	"ehr-gateway-service/internal/app/drivers/database"
	"ehr-gateway-service/internal/app/drivers/httpclient"
	"ehr-gateway-service/internal/app/drivers/logger"
	"ehr-gateway-service/internal/app/services/core/auth"
	"ehr-gateway-service/internal/app/services/core/entities"
	"ehr-gateway-service/internal/app/services/core/session"
	"ehr-gateway-service/internal/app/services/fhir_ema"
	"ehr-gateway-service/internal/app/services/shared/credentials"
	"ehr-gateway-service/internal/app/services/shared/metrics"
	"ehr-gateway-service/internal/app/services/shared/ratelimiter"
	"ehr-gateway-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	httpClient := httpclient.NewHTTPClient(internalConfig)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		HTTPClient:     httpClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, accessLog)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Failed to release resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, accessLog *logrus.Logger) {
	internalConfig := bootstrap.InternalConfig
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	upstreamMetrics := metrics.NewUpstreamMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	// Credentials
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	credentialStore := credentials.NewCredentialStore(redisRepository, bootstrap.Logger)
	credentialProvider := credentials.NewCredentialProvider(
		credentialStore,
		internalConfig.EHR.CredentialKey,
		internalConfig.EHR.CredentialScope,
	)
	sessionService := session.NewSessionService(internalConfig)

	// Upstream
	limiter := ratelimiter.NewOutboundLimiter(internalConfig.EHR.OutboundMaxRequestsPerSecond)
	queryBuilder := fhir_ema.NewQueryBuilder(internalConfig.EHR.BaseUrl, internalConfig.EHR.FirmUrlPrefix)
	ehrClient := fhir_ema.NewEHRClient(bootstrap.HTTPClient, credentialProvider, limiter, upstreamMetrics, bootstrap.Logger)
	oauthClient := fhir_ema.NewOAuthClient(bootstrap.HTTPClient, queryBuilder, limiter, bootstrap.Logger)

	// Usecases
	entityUsecase := entities.NewEntityUsecase(ehrClient, queryBuilder, upstreamMetrics, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(oauthClient, credentialStore, sessionService, upstreamMetrics, internalConfig, bootstrap.Logger)

	// Controllers
	ctrls := &routers.Controllers{
		Auth:        controllers.NewAuthController(bootstrap.Logger, authUsecase, requestTimeout),
		Patient:     controllers.NewPatientController(bootstrap.Logger, entityUsecase, requestTimeout),
		Appointment: controllers.NewAppointmentController(bootstrap.Logger, entityUsecase, requestTimeout),
		Slot:        controllers.NewSlotController(bootstrap.Logger, entityUsecase, requestTimeout),
		Health:      controllers.NewHealthController(bootstrap.Logger, redisRepository),
	}

	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig, sessionService, httpMetrics)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewareInstance, accessLog, metricsHandler, ctrls)
}
