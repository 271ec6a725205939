package doctors

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"regexp"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type doctorMongoRepository struct {
	Collection *mongo.Collection
}

var (
	doctorMongoRepositoryInstance contracts.DoctorRepository
	onceDoctorMongoRepository     sync.Once
)

func NewDoctorMongoRepository(db *mongo.Database) contracts.DoctorRepository {
	onceDoctorMongoRepository.Do(func() {
		doctorMongoRepositoryInstance = &doctorMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionDoctors),
		}
	})
	return doctorMongoRepositoryInstance
}

func (r *doctorMongoRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) error {
	_, err := r.Collection.InsertOne(ctx, doctorModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *doctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.find(ctx, bson.M{})
}

func (r *doctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"_id": doctorID})
}

func (r *doctorMongoRepository) FindByIDs(ctx context.Context, doctorIDs []string) (map[string]*models.Doctor, error) {
	result := make(map[string]*models.Doctor, len(doctorIDs))
	if len(doctorIDs) == 0 {
		return result, nil
	}

	doctors, err := r.find(ctx, bson.M{"_id": bson.M{"$in": doctorIDs}})
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		result[doctors[i].ID] = &doctors[i]
	}
	return result, nil
}

func (r *doctorMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

// FindBySpecialization matches the term as a case-insensitive substring.
func (r *doctorMongoRepository) FindBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	filter := bson.M{"specialization": primitive.Regex{
		Pattern: regexp.QuoteMeta(specialization),
		Options: "i",
	}}
	return r.find(ctx, filter)
}

func (r *doctorMongoRepository) UpdateByUserID(ctx context.Context, userID string, fields map[string]interface{}) (*models.Doctor, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doctor models.Doctor
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"userId": userID}, bson.M{"$set": fields}, opts).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &doctor, nil
}

func (r *doctorMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, filter).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *doctorMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}
