package main

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/drivers/database"
	"beauty-clinic-service/internal/app/drivers/logger"
	"beauty-clinic-service/internal/app/services/core/slots"
	"context"
	"log"
	"time"
)

// Creates the slot store indexes without starting the HTTP server.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer mongoDB.Client().Disconnect(context.Background())

	err := slots.NewSlotMongoRepository(mongoDB, zapLogger).EnsureIndexes(ctx)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied slot indexes on database %s", driverConfig.MongoDB.DbName)
}
