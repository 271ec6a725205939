package appointments

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

type appointmentMongoRepository struct {
	Collection *mongo.Collection
}

var (
	appointmentMongoRepositoryInstance contracts.AppointmentRepository
	onceAppointmentMongoRepository     sync.Once
)

func NewAppointmentMongoRepository(db *mongo.Database) contracts.AppointmentRepository {
	onceAppointmentMongoRepository.Do(func() {
		appointmentMongoRepositoryInstance = &appointmentMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionAppointments),
		}
	})
	return appointmentMongoRepositoryInstance
}

func (r *appointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) error {
	_, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *appointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *appointmentMongoRepository) FindAll(ctx context.Context, filter contracts.AppointmentFilter) ([]models.Appointment, error) {
	query := bson.M{}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.DoctorID != "" {
		query["doctorId"] = filter.DoctorID
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: 1},
		{Key: "appointmentTime", Value: 1},
	})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

// transitionStatusQuery matches the appointment only while it is still
// scheduled, so a terminal appointment is never rewritten.
func transitionStatusQuery(appointmentID, newStatus string, notes *string, now time.Time) (bson.M, bson.M) {
	filter := bson.M{
		"_id":    appointmentID,
		"status": constvars.AppointmentStatusScheduled,
	}
	fields := bson.M{
		"status":    newStatus,
		"updatedAt": now,
	}
	if notes != nil {
		fields["notes"] = *notes
	}
	return filter, bson.M{"$set": fields}
}

func (r *appointmentMongoRepository) TransitionStatus(ctx context.Context, appointmentID, newStatus string, notes *string) (*models.Appointment, error) {
	filter, update := transitionStatusQuery(appointmentID, newStatus, notes, time.Now().UTC())
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment models.Appointment
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &appointment, nil
}
