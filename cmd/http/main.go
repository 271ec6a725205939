package main

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/delivery/http/routers"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/drivers/messaging"
	"hospital-service/internal/app/drivers/storage"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/auth"
	"hospital-service/internal/app/services/core/doctors"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/app/services/core/roles"
	"hospital-service/internal/app/services/core/session"
	"hospital-service/internal/app/services/core/users"
	"hospital-service/internal/app/services/shared/events"
	"hospital-service/internal/app/services/shared/ratelimiter"
	"hospital-service/internal/app/services/shared/redis"
	sharedStorage "hospital-service/internal/app/services/shared/storage"
	"hospital-service/internal/migration"
	"hospital-service/internal/pkg/constvars"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "develop"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if Version != "develop" {
		internalConfig.App.Version = Version
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port), zap.String("version", internalConfig.App.Version))
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
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB)

	// uniqueness of email, username and profile owners relies on these
	err := migration.EnsureIndexes(ctx, bootstrap.MongoDB, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	sessionService := session.NewSessionService(redisRepository)
	loginLimiter := ratelimiter.NewAttemptLimiter(
		redisRepository,
		constvars.LOGIN_LIMITER_GROUP,
		time.Duration(bootstrap.InternalConfig.App.LoginAttemptWindowInSeconds)*time.Second,
		bootstrap.InternalConfig.App.LoginMaxAttempts,
		bootstrap.Logger,
	)
	eventPublisher, err := events.NewAppointmentEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQAppointmentEventQueue)
	if err != nil {
		return err
	}

	// Authorization
	enforcer, err := roles.NewCasbinEnforcer()
	if err != nil {
		return err
	}
	authorizationPolicy := roles.NewAuthorizationPolicy(enforcer, bootstrap.Logger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		sessionService,
		authorizationPolicy,
		minioStorage,
		loginLimiter,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, userMongoRepository, authorizationPolicy, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, userMongoRepository, authorizationPolicy, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		patientMongoRepository,
		doctorMongoRepository,
		userMongoRepository,
		authorizationPolicy,
		eventPublisher,
		bootstrap.Logger,
	)

	// Delivery
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, authorizationPolicy, bootstrap.InternalConfig)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)
	healthController := controllers.NewHealthController(bootstrap.Logger, map[string]controllers.HealthCheckFunc{
		"mongodb": func(ctx context.Context) error {
			return bootstrap.MongoDB.Client().Ping(ctx, readpref.Primary())
		},
		"redis": redisRepository.Ping,
		"minio": func(ctx context.Context) error {
			return minioStorage.BucketExists(ctx, bootstrap.DriverConfig.Minio.BucketName)
		},
		"rabbitmq": func(context.Context) error {
			if bootstrap.RabbitMQ.IsClosed() {
				return amqp091.ErrClosed
			}
			return nil
		},
	}, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		doctorController,
		patientController,
		appointmentController,
		healthController,
	)
	return nil
}
