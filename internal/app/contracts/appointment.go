package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	ListAppointments(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
}

// AppointmentFilter is empty for an unscoped listing.
type AppointmentFilter struct {
	PatientID string
	DoctorID  string
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)
	// TransitionStatus applies the change only while the appointment is still
	// scheduled and returns nil when nothing matched.
	TransitionStatus(ctx context.Context, appointmentID, newStatus string, notes *string) (*models.Appointment, error)
}
