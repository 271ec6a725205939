package models

import (
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/responses"
	"time"
)

type Appointment struct {
	ID              string    `bson:"_id"`
	PatientID       string    `bson:"patientId"`
	DoctorID        string    `bson:"doctorId"`
	AppointmentDate time.Time `bson:"appointmentDate"`
	AppointmentTime string    `bson:"appointmentTime"`
	Status          string    `bson:"status"`
	Reason          string    `bson:"reason"`
	Notes           string    `bson:"notes,omitempty"`
	TimeModel       `bson:",inline"`
}

// IsTerminal reports whether no further status transition is allowed.
func (a *Appointment) IsTerminal() bool {
	return a.Status == constvars.AppointmentStatusCompleted || a.Status == constvars.AppointmentStatusCancelled
}

func (a *Appointment) ToResponse() *responses.Appointment {
	return &responses.Appointment{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate.Format(constvars.DateLayoutYYYYMMDD),
		AppointmentTime: a.AppointmentTime,
		Status:          a.Status,
		Reason:          a.Reason,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// AppointmentEvent is the audit message published after a successful
// creation or status change.
type AppointmentEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	DoctorID      string    `json:"doctor_id"`
	ActorID       string    `json:"actor_id"`
	ActorRole     string    `json:"actor_role"`
	FromStatus    string    `json:"from_status,omitempty"`
	ToStatus      string    `json:"to_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
