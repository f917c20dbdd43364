package config

import (
	"beauty-clinic-service/internal/pkg/constvars"
	"beauty-clinic-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "beauty_clinic"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
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
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "5000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		Slot: AppSlot{
			Template:        utils.GetEnvStringSlice("SLOT_TEMPLATE", constvars.DefaultSlotTemplate),
			ExcludeStatuses: utils.GetEnvStringSlice("SLOT_EXCLUDE_STATUSES", []string{}),
			WindowDays:      utils.GetEnvInt("SLOT_WINDOW_DAYS", constvars.DefaultSlotWindowDays),
		},
		BookingRecords: AppBookingRecords{
			BaseUrl:              utils.GetEnvString("BOOKING_RECORDS_BASE_URL", "https://686fae6b91e85fac42a215f6.mockapi.io"),
			TimeoutInSeconds:     utils.GetEnvInt("BOOKING_RECORDS_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond: utils.GetEnvInt("BOOKING_RECORDS_MAX_REQUESTS_PER_SECOND", 10),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Cache: AppCache{
			ServiceCatalogTTLInSeconds: utils.GetEnvInt("CACHE_SERVICE_CATALOG_TTL_IN_SECONDS", 300),
		},
	}
}
