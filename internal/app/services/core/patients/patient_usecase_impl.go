package patients

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository   contracts.PatientRepository
	UserRepository      contracts.UserRepository
	AuthorizationPolicy contracts.AuthorizationPolicy
	Log                 *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	authorizationPolicy contracts.AuthorizationPolicy,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository:   patientRepository,
		UserRepository:      userRepository,
		AuthorizationPolicy: authorizationPolicy,
		Log:                 logger,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context, session *models.Session) ([]responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := uc.AuthorizationPolicy.AuthorizeRole(session.Role, constvars.ActionViewPatientRecord)
	if err != nil {
		return nil, err
	}

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.ListPatients error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	userIDs := make([]string, 0, len(patients))
	for _, patient := range patients {
		userIDs = append(userIDs, patient.UserID)
	}
	owners, err := uc.UserRepository.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		response = append(response, *patients[i].ToResponse(owners[patients[i].UserID]))
	}

	uc.Log.Info("patientUsecase.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(response)),
	)
	return response, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	err := uc.AuthorizationPolicy.AuthorizeRole(session.Role, constvars.ActionViewPatientRecord)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, constvars.ResourcePatient)
	}

	owner, err := uc.UserRepository.FindByID(ctx, patient.UserID)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_record_viewed", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, session.Role),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient.ToResponse(owner), nil
}

func (uc *patientUsecase) UpdateOwnProfile(ctx context.Context, session *models.Session, request *requests.UpdatePatientProfile) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdateOwnProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	err := uc.AuthorizationPolicy.AuthorizeRole(session.Role, constvars.ActionUpdatePatientProfile)
	if err != nil {
		return nil, err
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	fields, err := buildPatientUpdateFields(request)
	if err != nil {
		return nil, err
	}

	_, err = uc.findOwnProfile(ctx, session, constvars.ActionUpdatePatientProfile)
	if err != nil {
		return nil, err
	}

	updated, err := uc.PatientRepository.UpdateByUserID(ctx, session.UserID, fields)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdateOwnProfile error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrProfileNotFound(nil, constvars.RolePatient)
	}

	owner, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_profile_updated", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingPatientIDKey, updated.ID),
	)
	return updated.ToResponse(owner), nil
}

func (uc *patientUsecase) AppendMedicalHistory(ctx context.Context, session *models.Session, request *requests.AppendMedicalHistory) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.AppendMedicalHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	err := uc.AuthorizationPolicy.AuthorizeRole(session.Role, constvars.ActionAppendMedicalHistory)
	if err != nil {
		return nil, err
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	_, err = uc.findOwnProfile(ctx, session, constvars.ActionAppendMedicalHistory)
	if err != nil {
		return nil, err
	}

	entry := models.MedicalHistoryEntry{
		Condition: request.Condition,
		Date:      date,
		Notes:     request.Notes,
	}
	updated, err := uc.PatientRepository.AppendMedicalHistory(ctx, session.UserID, entry)
	if err != nil {
		uc.Log.Error("patientUsecase.AppendMedicalHistory error appending entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrProfileNotFound(nil, constvars.RolePatient)
	}

	owner, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "medical_history_appended", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingPatientIDKey, updated.ID),
		zap.Int("entries", len(updated.MedicalHistory)),
	)
	return updated.ToResponse(owner), nil
}

func (uc *patientUsecase) findOwnProfile(ctx context.Context, session *models.Session, action string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrProfileNotFound(nil, constvars.RolePatient)
	}

	err = uc.AuthorizationPolicy.Authorize(session.Role, action, patient.UserID, session.UserID)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// buildPatientUpdateFields only sets the fields present in the request and
// never touches the medical history.
func buildPatientUpdateFields(request *requests.UpdatePatientProfile) (map[string]interface{}, error) {
	fields := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}
	if request.DateOfBirth != nil {
		dateOfBirth, err := utils.ParseDate(*request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		fields["dateOfBirth"] = dateOfBirth
	}
	if request.Phone != nil {
		fields["phone"] = *request.Phone
	}
	if request.Address != nil {
		fields["address"] = *request.Address
	}
	if request.EmergencyContact != nil {
		fields["emergencyContact"] = models.NewEmergencyContact(request.EmergencyContact)
	}
	return fields, nil
}
