package config

import (
	"telecare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "telecare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Postgres: Postgres{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "telecare"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "telecare-profile-photos"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	appEnv := utils.GetEnvString("APP_ENV", "development")

	return &InternalConfig{
		App: App{
			Env:                      appEnv,
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			BaseDomain:               utils.GetEnvString("APP_BASE_DOMAIN", "telecarezone.com"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		DB: DB{
			Driver: utils.GetEnvString("DB_DRIVER", "mongo"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "change-me"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Fee: Fee{
			PlatformPercent: utils.GetEnvFloat("FEE_PLATFORM_PERCENT", 10),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:                 utils.GetEnvString("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
			KeyID:                   utils.GetEnvString("RAZORPAY_KEY_ID", ""),
			KeySecret:               utils.GetEnvString("RAZORPAY_KEY_SECRET", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("RAZORPAY_REQUEST_TIMEOUT_IN_SECONDS", 10),
			AllowMockOrder:          utils.GetEnvBool("PAYMENT_GATEWAY_ALLOW_MOCK_ORDER", appEnv != "production"),
		},
		WhatsApp: WhatsApp{
			Queue:                   utils.GetEnvString("RABBITMQ_WHATSAPP_QUEUE", "telecare.whatsapp"),
			Fast2SMSBaseUrl:         utils.GetEnvString("FAST2SMS_BASE_URL", "https://www.fast2sms.com/dev/bulkV2"),
			Fast2SMSApiKey:          utils.GetEnvString("FAST2SMS_API_KEY", ""),
			Fast2SMSSenderID:        utils.GetEnvString("FAST2SMS_SENDER_ID", ""),
			SendsPerSecond:          utils.GetEnvFloat("FAST2SMS_SENDS_PER_SECOND", 1),
			RequestTimeoutInSeconds: utils.GetEnvInt("FAST2SMS_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
	}
}
