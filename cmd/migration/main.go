package main

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/services/core/users"
	"hospital-service/internal/migration"
	"time"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	defer mongoDB.Client().Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	userMongoRepository := users.NewUserMongoRepository(mongoDB)
	err := migration.Run(ctx, mongoDB, userMongoRepository, internalConfig.Admin, log)
	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration finished")
}
