package config

import (
	"strings"

	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
		},
		EHR: AppEHR{
			BaseUrl:                      strings.TrimRight(utils.GetEnvString("EHR_BASE_URL", "http://localhost:9090"), "/"),
			FirmUrlPrefix:                strings.Trim(utils.GetEnvString("EHR_FIRM_URL_PREFIX", "firm"), "/"),
			CredentialKey:                utils.GetEnvString("EHR_CREDENTIAL_KEY", constvars.DefaultCredentialKey),
			CredentialScope:              utils.GetEnvString("EHR_CREDENTIAL_SCOPE", constvars.CredentialScopeGlobal),
			HTTPTimeoutInSeconds:         utils.GetEnvInt("EHR_HTTP_TIMEOUT_IN_SECONDS", 0),
			OutboundMaxRequestsPerSecond: utils.GetEnvInt("EHR_OUTBOUND_MAX_REQUESTS_PER_SECOND", 0),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
	}
}

func (c *InternalConfig) IsSessionScoped() bool {
	return c.EHR.CredentialScope == constvars.CredentialScopeSession
}
