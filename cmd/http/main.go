package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conexperto-service/cmd/migration"
	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/delivery/http/controllers"
	"conexperto-service/internal/app/delivery/http/middlewares"
	"conexperto-service/internal/app/delivery/http/routers"
	"conexperto-service/internal/app/drivers/database"
	"conexperto-service/internal/app/drivers/logger"
	"conexperto-service/internal/app/drivers/messaging"
	"conexperto-service/internal/app/services/core/banks"
	"conexperto-service/internal/app/services/core/bookings"
	"conexperto-service/internal/app/services/core/catalog"
	"conexperto-service/internal/app/services/core/checkout"
	"conexperto-service/internal/app/services/core/currency"
	"conexperto-service/internal/app/services/core/payments"
	"conexperto-service/internal/app/services/core/pricing"
	"conexperto-service/internal/app/services/core/sweeper"
	"conexperto-service/internal/app/services/shared/events"
	"conexperto-service/internal/app/services/shared/exchange"
	"conexperto-service/internal/app/services/shared/locker"
	"conexperto-service/internal/app/services/shared/metrics"
	"conexperto-service/internal/app/services/shared/payment_gateway"
	"conexperto-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	postgresDB := database.NewPostgresDB(driverConfig, log)
	migration.Run(postgresDB)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitConnection := messaging.NewRabbitMQConnection(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during dependency shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	metricsRegistry := metrics.NewRegistry()
	exchangeRateService := exchange.NewExchangeRateService(bootstrap.InternalConfig, redisRepository, bootstrap.Logger)
	gatewayService := payment_gateway.NewGatewayService(bootstrap.InternalConfig, bootstrap.Logger)
	eventPublisher := events.NewEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	httpMiddlewares := middlewares.New(bootstrap.Logger, bootstrap.InternalConfig)

	// Catalog
	serviceRepository := catalog.NewServicePostgresRepository(bootstrap.PostgresDB)
	addonRepository := catalog.NewAddonPostgresRepository(bootstrap.PostgresDB)
	expertRepository := catalog.NewExpertPostgresRepository(bootstrap.PostgresDB)

	// Pricing
	pricingUsecase := pricing.NewPricingUsecase(serviceRepository, addonRepository, metricsRegistry, bootstrap.Logger)

	// Currency
	currencyNormalizer := currency.NewCurrencyNormalizer(exchangeRateService, metricsRegistry, bootstrap.Logger)

	// Bookings
	bookingRepository := bookings.NewBookingPostgresRepository(bootstrap.PostgresDB)
	bookingUsecase := bookings.NewBookingUsecase(bookingRepository, expertRepository, bootstrap.InternalConfig, bootstrap.Logger)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Checkout
	checkoutUsecase := checkout.NewCheckoutUsecase(
		pricingUsecase,
		bookingUsecase,
		bookingRepository,
		serviceRepository,
		currencyNormalizer,
		gatewayService,
		bootstrap.InternalConfig,
		metricsRegistry,
		bootstrap.Logger,
	)
	checkoutController := controllers.NewCheckoutController(bootstrap.Logger, checkoutUsecase)

	// Payments
	paymentUsecase := payments.NewPaymentUsecase(bookingRepository, eventPublisher, metricsRegistry, bootstrap.Logger)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Banks
	bankUsecase := banks.NewBankUsecase(gatewayService, redisRepository, bootstrap.Logger)
	bankController := controllers.NewBankController(bootstrap.Logger, bankUsecase)

	// Expiration sweeper
	sweeperWorker := sweeper.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, bookingRepository, metricsRegistry)
	sweeperWorker.Start(context.Background())
	bootstrap.SweeperStop = sweeperWorker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		checkoutController,
		bookingController,
		paymentController,
		bankController,
		metricsRegistry.Handler(),
	)
}
