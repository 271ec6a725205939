package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]responses.Doctor, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	SearchBySpecialization(ctx context.Context, specialization string) ([]responses.Doctor, error)
	UpdateOwnProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctorModel *models.Doctor) error
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByIDs(ctx context.Context, doctorIDs []string) (map[string]*models.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	FindBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error)
	UpdateByUserID(ctx context.Context, userID string, fields map[string]interface{}) (*models.Doctor, error)
}
