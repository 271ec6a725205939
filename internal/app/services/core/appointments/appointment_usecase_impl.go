package appointments

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

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	AuthorizationPolicy   contracts.AuthorizationPolicy
	EventPublisher        contracts.AppointmentEventPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	authorizationPolicy contracts.AuthorizationPolicy,
	eventPublisher contracts.AppointmentEventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		DoctorRepository:      doctorRepository,
		UserRepository:        userRepository,
		AuthorizationPolicy:   authorizationPolicy,
		EventPublisher:        eventPublisher,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	err := uc.AuthorizationPolicy.AuthorizeRole(session.Role, constvars.ActionCreateAppointment)
	if err != nil {
		return nil, err
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointmentDate, err := utils.ParseDate(request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrProfileNotFound(nil, constvars.RolePatient)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, constvars.ResourceDoctor)
	}

	appointment := &models.Appointment{
		ID:              utils.GenerateID(),
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: appointmentDate,
		AppointmentTime: request.AppointmentTime,
		Status:          constvars.AppointmentStatusScheduled,
		Reason:          request.Reason,
	}
	appointment.SetCreatedAtUpdatedAt()

	err = uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, session, appointment, constvars.AppointmentEventCreated, "")

	utils.LogBusinessEvent(uc.Log, "appointment_created", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPatientIDKey, appointment.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
	)
	return uc.joinOne(ctx, appointment)
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err := uc.AuthorizationPolicy.AuthorizeRole(session.Role, constvars.ActionListAppointments)
	if err != nil {
		return nil, err
	}

	filter, err := uc.scopeFor(ctx, session)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := uc.join(ctx, appointments)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListAppointments error joining display fields",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := uc.AuthorizationPolicy.AuthorizeRole(session.Role, constvars.ActionUpdateAppointmentStatus)
	if err != nil {
		return nil, err
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	updated, err := uc.transition(ctx, session, appointmentID, constvars.ActionUpdateAppointmentStatus, request.Status, request.Notes)
	if err != nil {
		return nil, err
	}
	return uc.joinOne(ctx, updated)
}

// CancelAppointment is the scheduled to cancelled transition. The record is kept.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := uc.AuthorizationPolicy.AuthorizeRole(session.Role, constvars.ActionCancelAppointment)
	if err != nil {
		return nil, err
	}

	updated, err := uc.transition(ctx, session, appointmentID, constvars.ActionCancelAppointment, constvars.AppointmentStatusCancelled, nil)
	if err != nil {
		return nil, err
	}
	return uc.joinOne(ctx, updated)
}

func (uc *appointmentUsecase) transition(ctx context.Context, session *models.Session, appointmentID, action, newStatus string, notes *string) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, constvars.ResourceAppointment)
	}

	callerRef, err := uc.callerRefFor(ctx, session)
	if err != nil {
		return nil, err
	}
	err = uc.AuthorizationPolicy.Authorize(session.Role, action, ownerRefFor(session.Role, appointment), callerRef)
	if err != nil {
		utils.LogSecurityEvent(uc.Log, "appointment_access_denied", requestID,
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.String(constvars.LoggingRoleKey, session.Role),
			zap.String(constvars.LoggingActionKey, action),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, err
	}

	if appointment.IsTerminal() {
		return nil, exceptions.ErrAppointmentStatusTransition(appointment.ID, appointment.Status, newStatus)
	}

	updated, err := uc.AppointmentRepository.TransitionStatus(ctx, appointmentID, newStatus, notes)
	if err != nil {
		uc.Log.Error("appointmentUsecase.transition error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		// lost the race to another transition, or the record is gone
		current, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrDocumentNotFound(nil, constvars.ResourceAppointment)
		}
		return nil, exceptions.ErrAppointmentStatusTransition(current.ID, current.Status, newStatus)
	}

	uc.publish(ctx, session, updated, constvars.AppointmentEventStatusChanged, appointment.Status)

	utils.LogBusinessEvent(uc.Log, "appointment_status_changed", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, updated.ID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingStatusKey, updated.Status),
	)
	return updated, nil
}

// callerRefFor resolves the caller's profile id, which is what appointments
// reference. An admin is referenced by account id. A missing profile yields
// an empty reference, which the policy always denies.
func (uc *appointmentUsecase) callerRefFor(ctx context.Context, session *models.Session) (string, error) {
	switch session.Role {
	case constvars.RolePatient:
		patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
		if err != nil || patient == nil {
			return "", err
		}
		return patient.ID, nil
	case constvars.RoleDoctor:
		doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
		if err != nil || doctor == nil {
			return "", err
		}
		return doctor.ID, nil
	default:
		return session.UserID, nil
	}
}

func ownerRefFor(role string, appointment *models.Appointment) string {
	if role == constvars.RolePatient {
		return appointment.PatientID
	}
	return appointment.DoctorID
}

// scopeFor limits a listing to the caller's own appointments unless the
// caller is an admin.
func (uc *appointmentUsecase) scopeFor(ctx context.Context, session *models.Session) (contracts.AppointmentFilter, error) {
	switch session.Role {
	case constvars.RolePatient:
		patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
		if err != nil {
			return contracts.AppointmentFilter{}, err
		}
		if patient == nil {
			return contracts.AppointmentFilter{}, exceptions.ErrProfileNotFound(nil, constvars.RolePatient)
		}
		return contracts.AppointmentFilter{PatientID: patient.ID}, nil
	case constvars.RoleDoctor:
		doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
		if err != nil {
			return contracts.AppointmentFilter{}, err
		}
		if doctor == nil {
			return contracts.AppointmentFilter{}, exceptions.ErrProfileNotFound(nil, constvars.RoleDoctor)
		}
		return contracts.AppointmentFilter{DoctorID: doctor.ID}, nil
	default:
		return contracts.AppointmentFilter{}, nil
	}
}

// publish sends the audit event. A broker failure is logged and never fails
// the request because the write has already committed.
func (uc *appointmentUsecase) publish(ctx context.Context, session *models.Session, appointment *models.Appointment, eventType, fromStatus string) {
	event := &models.AppointmentEvent{
		EventID:       utils.GenerateID(),
		Type:          eventType,
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		ActorID:       session.UserID,
		ActorRole:     session.Role,
		FromStatus:    fromStatus,
		ToStatus:      appointment.Status,
		OccurredAt:    time.Now().UTC(),
	}

	err := uc.EventPublisher.PublishAppointmentEvent(ctx, event)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) joinOne(ctx context.Context, appointment *models.Appointment) (*responses.Appointment, error) {
	joined, err := uc.join(ctx, []models.Appointment{*appointment})
	if err != nil {
		return nil, err
	}
	return &joined[0], nil
}

// join attaches patient and doctor display fields with one lookup per
// collection.
func (uc *appointmentUsecase) join(ctx context.Context, appointments []models.Appointment) ([]responses.Appointment, error) {
	patientIDs := make([]string, 0, len(appointments))
	doctorIDs := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		patientIDs = append(patientIDs, appointment.PatientID)
		doctorIDs = append(doctorIDs, appointment.DoctorID)
	}

	patients, err := uc.PatientRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}
	doctors, err := uc.DoctorRepository.FindByIDs(ctx, doctorIDs)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(patients)+len(doctors))
	for _, patient := range patients {
		userIDs = append(userIDs, patient.UserID)
	}
	for _, doctor := range doctors {
		userIDs = append(userIDs, doctor.UserID)
	}
	users, err := uc.UserRepository.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		item := appointments[i].ToResponse()
		if patient, ok := patients[appointments[i].PatientID]; ok {
			item.Patient = buildParty(patient.ID, users[patient.UserID], "")
		}
		if doctor, ok := doctors[appointments[i].DoctorID]; ok {
			item.Doctor = buildParty(doctor.ID, users[doctor.UserID], doctor.Specialization)
		}
		response = append(response, *item)
	}
	return response, nil
}

func buildParty(profileID string, owner *models.User, specialization string) *responses.AppointmentParty {
	party := &responses.AppointmentParty{
		ID:             profileID,
		Specialization: specialization,
	}
	if owner != nil {
		party.FirstName = owner.FirstName
		party.LastName = owner.LastName
		party.Email = owner.Email
	}
	return party
}
