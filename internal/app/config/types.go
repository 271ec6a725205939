package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Database
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		InternalConfig *InternalConfig
		DriverConfig   *DriverConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	InternalConfig struct {
		App   App
		JWT   JWT
		Admin Admin
	}

	App struct {
		Env                                      string
		Port                                     string
		Version                                  string
		Timezone                                 string
		EndpointPrefix                           string
		MaxRequests                              int
		ShutdownTimeout                          int
		RequestTimeoutInSeconds                  int
		RequestBodyLimitInMegabyte               int
		RabbitMQAppointmentEventQueue            string
		MinioProfilePictureMaxUploadSizeInMB     int64
		MinioPreSignedUrlObjectExpiryTimeInHours int
		LoginMaxAttempts                         int
		LoginAttemptWindowInSeconds              int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// Admin is the account seeded by the migration command.
	Admin struct {
		Username  string
		Email     string
		Password  string
		FirstName string
		LastName  string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)
