package main

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/delivery/http/controllers"
	"beauty-clinic-service/internal/app/delivery/http/middlewares"
	"beauty-clinic-service/internal/app/delivery/http/routers"
	"beauty-clinic-service/internal/app/drivers/database"
	"beauty-clinic-service/internal/app/drivers/logger"
	bookingRecords "beauty-clinic-service/internal/app/services/booking_records"
	"beauty-clinic-service/internal/app/services/core/appointments"
	serviceCatalog "beauty-clinic-service/internal/app/services/core/service_catalog"
	"beauty-clinic-service/internal/app/services/core/slots"
	"beauty-clinic-service/internal/app/services/shared/redis"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Starting beauty clinic service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	appointmentRecordsClient := bookingRecords.NewAppointmentRecordsClient(bootstrap.InternalConfig.BookingRecords, bootstrap.Logger)
	serviceRecordsClient := bookingRecords.NewServiceRecordsClient(bootstrap.InternalConfig.BookingRecords, bootstrap.Logger)

	slotMongoRepository := slots.NewSlotMongoRepository(bootstrap.MongoDB, bootstrap.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := slotMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}

	slotUsecase := slots.NewSlotUsecase(slotMongoRepository, appointmentRecordsClient, bootstrap.InternalConfig, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRecordsClient, bootstrap.Logger)
	serviceCatalogUsecase := serviceCatalog.NewServiceCatalogUsecase(serviceRecordsClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)

	healthController := controllers.NewHealthController(bootstrap.Logger)
	slotController := controllers.NewSlotController(bootstrap.Logger, slotUsecase, bootstrap.InternalConfig)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)
	serviceController := controllers.NewServiceController(bootstrap.Logger, serviceCatalogUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		healthController,
		slotController,
		appointmentController,
		serviceController,
	)
	return nil
}
