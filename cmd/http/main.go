package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"taskgo-service/internal/app/config"
	"taskgo-service/internal/app/delivery/http/middlewares"
	"taskgo-service/internal/app/delivery/http/routers"
	"taskgo-service/internal/app/drivers/database"
	"taskgo-service/internal/app/drivers/logger"
	"taskgo-service/internal/app/drivers/messaging"
	"taskgo-service/internal/app/drivers/storage"
	"taskgo-service/internal/app/services/auth"
	"taskgo-service/internal/app/services/medicines"
	"taskgo-service/internal/app/services/orders"
	"taskgo-service/internal/app/services/pharmacy"
	sharedNotifications "taskgo-service/internal/app/services/shared/notifications"
	sharedRedis "taskgo-service/internal/app/services/shared/redis"
	sharedSessions "taskgo-service/internal/app/services/shared/sessions"
	sharedStorage "taskgo-service/internal/app/services/shared/storage"
	"taskgo-service/internal/app/services/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
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

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error while closing application dependencies: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	sessionService := sharedSessions.NewSessionService(redisRepository, bootstrap.InternalConfig.App.LoginSessionExpiredTimeInHours)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	eventPublisher, err := sharedNotifications.NewEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.OrderQueue,
		bootstrap.InternalConfig.RabbitMQ.ReminderQueue,
	)
	if err != nil {
		logrus.Fatalf("Failed to set up event publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Pharmacy backend clients
	pharmacyConfig := bootstrap.InternalConfig.Pharmacy
	authClient := pharmacy.NewAuthClient(pharmacyConfig.BaseUrl, pharmacyConfig.APIKey, pharmacyConfig.TimeoutInSeconds, bootstrap.Logger)
	userClient := pharmacy.NewUserClient(pharmacyConfig.BaseUrl, pharmacyConfig.APIKey, pharmacyConfig.TimeoutInSeconds, bootstrap.Logger)
	medicineClient := pharmacy.NewMedicineClient(pharmacyConfig.BaseUrl, pharmacyConfig.APIKey, pharmacyConfig.TimeoutInSeconds, bootstrap.Logger)
	orderClient := pharmacy.NewOrderClient(pharmacyConfig.BaseUrl, pharmacyConfig.APIKey, pharmacyConfig.TimeoutInSeconds, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(authClient, sessionService, redisRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// Users
	userUsecase := users.NewUserUsecase(userClient, sessionService, minioStorage, bootstrap.InternalConfig)
	userController := users.NewUserController(userUsecase, bootstrap.Logger)

	// Medicines
	medicineUsecase := medicines.NewMedicineUsecase(medicineClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	medicineController := medicines.NewMedicineController(medicineUsecase, bootstrap.Logger)

	// Orders
	orderUsecase := orders.NewOrderUsecase(orderClient, redisRepository, eventPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	orderController := orders.NewOrderController(orderUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		medicineController,
		orderController,
	)
}
