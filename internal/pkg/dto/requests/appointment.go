package requests

type CreateAppointment struct {
	DoctorID        string `json:"doctorId" validate:"required,uuid4"`
	AppointmentDate string `json:"appointmentDate" validate:"required,yyyymmdd"`
	AppointmentTime string `json:"appointmentTime" validate:"required,hhmm"`
	Reason          string `json:"reason" validate:"required,max=1000"`
}

type UpdateAppointmentStatus struct {
	Status string  `json:"status" validate:"required,oneof=completed cancelled"`
	Notes  *string `json:"notes,omitempty" validate:"omitnil,max=2000"`
}
