package migration

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func indexPlan() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: constvars.MongoCollectionUsers,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
				{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
			},
		},
		{
			collection: constvars.MongoCollectionDoctors,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_user_id")},
				{Keys: bson.D{{Key: "specialization", Value: 1}}, Options: options.Index().SetName("idx_specialization")},
			},
		},
		{
			collection: constvars.MongoCollectionPatients,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_user_id")},
			},
		},
		{
			collection: constvars.MongoCollectionAppointments,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "patientId", Value: 1}}, Options: options.Index().SetName("idx_patient_id")},
				{Keys: bson.D{{Key: "doctorId", Value: 1}}, Options: options.Index().SetName("idx_doctor_id")},
				{Keys: bson.D{{Key: "appointmentDate", Value: 1}, {Key: "appointmentTime", Value: 1}}, Options: options.Index().SetName("idx_schedule")},
			},
		},
	}
}

// EnsureIndexes creates the indexes every repository relies on. Creating an
// index that already exists with the same definition is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	for _, plan := range indexPlan() {
		names, err := db.Collection(plan.collection).Indexes().CreateMany(ctx, plan.models)
		if err != nil {
			log.Error("migration.EnsureIndexes error creating indexes",
				zap.String(constvars.LoggingCollectionKey, plan.collection),
				zap.Error(err),
			)
			return exceptions.ErrMongoDBCreateIndex(err, plan.collection)
		}
		log.Info("migration.EnsureIndexes succeeded",
			zap.String(constvars.LoggingCollectionKey, plan.collection),
			zap.Strings("indexes", names),
		)
	}
	return nil
}

// SeedAdmin creates the configured admin account unless it already exists.
// Admin accounts cannot be created through signup, so this is the only way in.
func SeedAdmin(ctx context.Context, userRepository contracts.UserRepository, admin config.Admin, log *zap.Logger) (bool, error) {
	if admin.Password == "" {
		log.Warn("migration.SeedAdmin skipped: ADMIN_PASSWORD is empty")
		return false, nil
	}

	existing, err := userRepository.FindByEmailOrUsername(ctx, admin.Email, admin.Username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		log.Info("migration.SeedAdmin skipped: account already exists",
			zap.String(constvars.LoggingUserIDKey, existing.ID),
		)
		return false, nil
	}

	hashedPassword, err := utils.HashPassword(admin.Password)
	if err != nil {
		return false, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:        utils.GenerateID(),
		Username:  admin.Username,
		Email:     admin.Email,
		Password:  hashedPassword,
		Role:      constvars.RoleAdmin,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
	}
	user.SetCreatedAtUpdatedAt()

	err = userRepository.CreateUser(ctx, user)
	if err != nil {
		return false, err
	}

	log.Info("migration.SeedAdmin created admin account",
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return true, nil
}

func Run(ctx context.Context, db *mongo.Database, userRepository contracts.UserRepository, admin config.Admin, log *zap.Logger) error {
	err := EnsureIndexes(ctx, db, log)
	if err != nil {
		return err
	}
	_, err = SeedAdmin(ctx, userRepository, admin, log)
	return err
}
