package config

import (
	"bookings-gateway/internal/pkg/constvars"
	"bookings-gateway/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

// NewInternalConfig reads the environment once. Missing credentials are not
// fatal here; every request then fails at token acquisition.
func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":5000"),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		Identity: AppIdentity{
			ClientID:      utils.GetEnvString("CLIENT_ID", ""),
			ClientSecret:  utils.GetEnvString("CLIENT_SECRET", ""),
			TenantID:      utils.GetEnvString("TENANT_ID", ""),
			AuthorityHost: utils.GetEnvString("IDENTITY_AUTHORITY_HOST", constvars.IdentityDefaultAuthority),
		},
		Graph: AppGraph{
			BaseUrl: utils.GetEnvString("GRAPH_BASE_URL", constvars.GraphDefaultBaseUrl),
			Scope:   utils.GetEnvString("GRAPH_SCOPE", constvars.GraphDefaultScope),
		},
	}
}
