package config

import (
	"hospital-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "hospital"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "hospital"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                      utils.GetEnvString("APP_ENV", "development"),
			Port:                                     utils.GetEnvString("APP_PORT", "8080"),
			Version:                                  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:                           utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                              utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeout:                          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:                  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:               utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			RabbitMQAppointmentEventQueue:            utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_EVENT_QUEUE", "appointment_events"),
			MinioProfilePictureMaxUploadSizeInMB:     utils.GetEnvInt64("APP_MINIO_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 1),
			LoginMaxAttempts:                         utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS", 5),
			LoginAttemptWindowInSeconds:              utils.GetEnvInt("APP_LOGIN_ATTEMPT_WINDOW_IN_SECONDS", 300),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "change-me"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Admin: Admin{
			Username:  utils.GetEnvString("ADMIN_USERNAME", "admin"),
			Email:     utils.GetEnvString("ADMIN_EMAIL", "admin@hospital.local"),
			Password:  utils.GetEnvString("ADMIN_PASSWORD", ""),
			FirstName: utils.GetEnvString("ADMIN_FIRST_NAME", "System"),
			LastName:  utils.GetEnvString("ADMIN_LAST_NAME", "Administrator"),
		},
	}
}
