package doctors

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository    contracts.DoctorRepository
	UserRepository      contracts.UserRepository
	AuthorizationPolicy contracts.AuthorizationPolicy
	Log                 *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	authorizationPolicy contracts.AuthorizationPolicy,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:    doctorRepository,
		UserRepository:      userRepository,
		AuthorizationPolicy: authorizationPolicy,
		Log:                 logger,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.ListDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := uc.joinOwners(ctx, doctors)
	if err != nil {
		uc.Log.Error("doctorUsecase.ListDoctors error joining owner accounts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(response)),
	)
	return response, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDoctorByID error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, constvars.ResourceDoctor)
	}

	owner, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.GetDoctorByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return doctor.ToResponse(owner), nil
}

func (uc *doctorUsecase) SearchBySpecialization(ctx context.Context, specialization string) ([]responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.SearchBySpecialization called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamSpecialization, specialization),
	)

	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		return uc.ListDoctors(ctx)
	}

	doctors, err := uc.DoctorRepository.FindBySpecialization(ctx, specialization)
	if err != nil {
		uc.Log.Error("doctorUsecase.SearchBySpecialization error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := uc.joinOwners(ctx, doctors)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.SearchBySpecialization succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(response)),
	)
	return response, nil
}

func (uc *doctorUsecase) UpdateOwnProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.UpdateOwnProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	err := uc.AuthorizationPolicy.AuthorizeRole(session.Role, constvars.ActionUpdateDoctorProfile)
	if err != nil {
		return nil, err
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrProfileNotFound(nil, constvars.RoleDoctor)
	}

	err = uc.AuthorizationPolicy.Authorize(session.Role, constvars.ActionUpdateDoctorProfile, doctor.UserID, session.UserID)
	if err != nil {
		return nil, err
	}

	fields := buildDoctorUpdateFields(request)
	updated, err := uc.DoctorRepository.UpdateByUserID(ctx, session.UserID, fields)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpdateOwnProfile error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrProfileNotFound(nil, constvars.RoleDoctor)
	}

	owner, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_profile_updated", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingDoctorIDKey, updated.ID),
	)
	return updated.ToResponse(owner), nil
}

// buildDoctorUpdateFields only sets the fields present in the request.
func buildDoctorUpdateFields(request *requests.UpdateDoctorProfile) map[string]interface{} {
	fields := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}
	if request.Specialization != nil {
		fields["specialization"] = *request.Specialization
	}
	if request.Qualification != nil {
		fields["qualification"] = *request.Qualification
	}
	if request.Experience != nil {
		fields["experience"] = *request.Experience
	}
	if request.Phone != nil {
		fields["phone"] = *request.Phone
	}
	if request.Schedule != nil {
		fields["schedule"] = models.NewScheduleSlots(request.Schedule)
	}
	return fields
}

func (uc *doctorUsecase) joinOwners(ctx context.Context, doctors []models.Doctor) ([]responses.Doctor, error) {
	userIDs := make([]string, 0, len(doctors))
	for _, doctor := range doctors {
		userIDs = append(userIDs, doctor.UserID)
	}

	owners, err := uc.UserRepository.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		response = append(response, *doctors[i].ToResponse(owners[doctors[i].UserID]))
	}
	return response, nil
}
