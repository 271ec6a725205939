package patients

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type patientMongoRepository struct {
	Collection *mongo.Collection
}

var (
	patientMongoRepositoryInstance contracts.PatientRepository
	oncePatientMongoRepository     sync.Once
)

func NewPatientMongoRepository(db *mongo.Database) contracts.PatientRepository {
	oncePatientMongoRepository.Do(func() {
		patientMongoRepositoryInstance = &patientMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionPatients),
		}
	})
	return patientMongoRepositoryInstance
}

func (r *patientMongoRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) error {
	_, err := r.Collection.InsertOne(ctx, patientModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *patientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return r.find(ctx, bson.M{})
}

func (r *patientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"_id": patientID})
}

func (r *patientMongoRepository) FindByIDs(ctx context.Context, patientIDs []string) (map[string]*models.Patient, error) {
	result := make(map[string]*models.Patient, len(patientIDs))
	if len(patientIDs) == 0 {
		return result, nil
	}

	patients, err := r.find(ctx, bson.M{"_id": bson.M{"$in": patientIDs}})
	if err != nil {
		return nil, err
	}
	for i := range patients {
		result[patients[i].ID] = &patients[i]
	}
	return result, nil
}

func (r *patientMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *patientMongoRepository) UpdateByUserID(ctx context.Context, userID string, fields map[string]interface{}) (*models.Patient, error) {
	return r.findOneAndUpdate(ctx, userID, bson.M{"$set": fields})
}

// AppendMedicalHistory pushes onto the stored list so concurrent appends are
// never lost to a read-modify-write.
func (r *patientMongoRepository) AppendMedicalHistory(ctx context.Context, userID string, entry models.MedicalHistoryEntry) (*models.Patient, error) {
	update := bson.M{
		"$push": bson.M{"medicalHistory": entry},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, userID, update)
}

func (r *patientMongoRepository) findOneAndUpdate(ctx context.Context, userID string, update bson.M) (*models.Patient, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var patient models.Patient
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &patient, nil
}

func (r *patientMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *patientMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}
