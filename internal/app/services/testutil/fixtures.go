package testutil

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/core/roles"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Store bundles the in-memory repositories used by usecase tests.
type Store struct {
	Users        *UserRepository
	Doctors      *DoctorRepository
	Patients     *PatientRepository
	Appointments *AppointmentRepository
	Redis        *RedisRepository
	Storage      *Storage
	Events       *EventPublisher
}

func NewStore() *Store {
	return &Store{
		Users:        NewUserRepository(),
		Doctors:      NewDoctorRepository(),
		Patients:     NewPatientRepository(),
		Appointments: NewAppointmentRepository(),
		Redis:        NewRedisRepository(),
		Storage:      NewStorage(),
		Events:       &EventPublisher{},
	}
}

func NewPolicy(t *testing.T) contracts.AuthorizationPolicy {
	t.Helper()
	enforcer, err := roles.NewCasbinEnforcer()
	require.NoError(t, err)
	return roles.NewAuthorizationPolicy(enforcer, zap.NewNop())
}

func (s *Store) SeedUser(t *testing.T, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     username + "@hospital.test",
		Role:      role,
		FirstName: username,
		LastName:  "Tester",
	}
	user.SetCreatedAtUpdatedAt()
	require.NoError(t, s.Users.CreateUser(context.Background(), user))
	return user
}

func (s *Store) SeedDoctor(t *testing.T, username, specialization string) (*models.User, *models.Doctor) {
	t.Helper()
	user := s.SeedUser(t, username, "doctor")
	doctor := &models.Doctor{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		Specialization: specialization,
		Qualification:  "MD",
		Experience:     10,
		Phone:          "+15550001",
		Schedule: []models.ScheduleSlot{
			{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
		},
	}
	doctor.SetCreatedAtUpdatedAt()
	require.NoError(t, s.Doctors.CreateDoctor(context.Background(), doctor))
	return user, doctor
}

func (s *Store) SeedPatient(t *testing.T, username string) (*models.User, *models.Patient) {
	t.Helper()
	user := s.SeedUser(t, username, "patient")
	patient := &models.Patient{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		DateOfBirth:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone:          "+15550002",
		Address:        "1 Main Street",
		MedicalHistory: []models.MedicalHistoryEntry{},
	}
	patient.SetCreatedAtUpdatedAt()
	require.NoError(t, s.Patients.CreatePatient(context.Background(), patient))
	return user, patient
}

func SessionFor(user *models.User) *models.Session {
	return &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}
}
