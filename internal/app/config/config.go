package config

import (
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "conexperto"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
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
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			BookingHoldTimeInMinutes:   utils.GetEnvInt("APP_BOOKING_HOLD_TIME_IN_MINUTES", constvars.DefaultBookingHoldMinutes),
			SweeperCronSpec:            utils.GetEnvString("APP_SWEEPER_CRON_SPEC", "*/5 * * * *"),
			CheckoutReturnURL:          utils.GetEnvString("APP_CHECKOUT_RETURN_URL", "http://localhost:3000/checkout/result"),
			BookingEventsQueue:         utils.GetEnvString("APP_RABBITMQ_BOOKING_EVENTS_QUEUE", "booking-events"),
			DefaultClientTimezone:      utils.GetEnvString("APP_DEFAULT_CLIENT_TIMEZONE", "America/Bogota"),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:          utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://sandbox.gateway.test/v1"),
			PublicKey:        utils.GetEnvString("PAYMENT_GATEWAY_PUBLIC_KEY", ""),
			PrivateKey:       utils.GetEnvString("PAYMENT_GATEWAY_PRIVATE_KEY", ""),
			TimeoutInSeconds: utils.GetEnvInt("PAYMENT_GATEWAY_TIMEOUT_IN_SECONDS", 30),
		},
		Exchange: Exchange{
			BaseUrl:               utils.GetEnvString("EXCHANGE_BASE_URL", "https://api.exchangerate.host"),
			TimeoutInSeconds:      utils.GetEnvInt("EXCHANGE_TIMEOUT_IN_SECONDS", 5),
			ReferenceRateTTLHours: utils.GetEnvInt("EXCHANGE_REFERENCE_RATE_TTL_HOURS", 72),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
	}
}
