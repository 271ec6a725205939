package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, session *models.Session) ([]responses.Patient, error)
	GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error)
	UpdateOwnProfile(ctx context.Context, session *models.Session, request *requests.UpdatePatientProfile) (*responses.Patient, error)
	AppendMedicalHistory(ctx context.Context, session *models.Session, request *requests.AppendMedicalHistory) (*responses.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patientModel *models.Patient) error
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByIDs(ctx context.Context, patientIDs []string) (map[string]*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
	UpdateByUserID(ctx context.Context, userID string, fields map[string]interface{}) (*models.Patient, error)
	AppendMedicalHistory(ctx context.Context, userID string, entry models.MedicalHistoryEntry) (*models.Patient, error)
}
