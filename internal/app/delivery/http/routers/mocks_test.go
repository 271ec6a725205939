package routers

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/testutil"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Signup(ctx context.Context, request requests.RegistrationRequest) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Auth), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Auth), args.Error(1)
}

func (m *MockAuthUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Profile), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthUsecase) UploadProfilePicture(ctx context.Context, session *models.Session, request *requests.UploadProfilePicture) (*responses.Profile, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Profile), args.Error(1)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) ListDoctors(ctx context.Context) ([]responses.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]responses.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) SearchBySpecialization(ctx context.Context, specialization string) ([]responses.Doctor, error) {
	args := m.Called(ctx, specialization)
	return args.Get(0).([]responses.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) UpdateOwnProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.Doctor, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Doctor), args.Error(1)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) ListPatients(ctx context.Context, session *models.Session) ([]responses.Patient, error) {
	args := m.Called(ctx, session)
	return args.Get(0).([]responses.Patient), args.Error(1)
}

func (m *MockPatientUsecase) GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, session, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Patient), args.Error(1)
}

func (m *MockPatientUsecase) UpdateOwnProfile(ctx context.Context, session *models.Session, request *requests.UpdatePatientProfile) (*responses.Patient, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Patient), args.Error(1)
}

func (m *MockPatientUsecase) AppendMedicalHistory(ctx context.Context, session *models.Session, request *requests.AppendMedicalHistory) (*responses.Patient, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Patient), args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) ListAppointments(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	args := m.Called(ctx, session)
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

var (
	_ contracts.AuthUsecase        = (*MockAuthUsecase)(nil)
	_ contracts.DoctorUsecase      = (*MockDoctorUsecase)(nil)
	_ contracts.PatientUsecase     = (*MockPatientUsecase)(nil)
	_ contracts.AppointmentUsecase = (*MockAppointmentUsecase)(nil)
)

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Version:                              "test",
			EndpointPrefix:                       "/api",
			MaxRequests:                          1000,
			RequestTimeoutInSeconds:              5,
			RequestBodyLimitInMegabyte:           1,
			MinioProfilePictureMaxUploadSizeInMB: 1,
		},
	}
}

func newTestMiddlewares(t *testing.T, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *middlewares.Middlewares {
	return middlewares.NewMiddlewares(zap.NewNop(), authUsecase, testutil.NewPolicy(t), internalConfig)
}

// expectSession makes the mocked Authenticate resolve token to a session for role.
func expectSession(authUsecase *MockAuthUsecase, token, role string) *models.Session {
	session := &models.Session{
		SessionID: token,
		UserID:    "user-" + role,
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	authUsecase.On("Authenticate", mock.Anything, token).Return(session, nil)
	return session
}
