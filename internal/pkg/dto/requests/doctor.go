package requests

type ScheduleSlot struct {
	Day       string `json:"day" validate:"required,weekday"`
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
}

// UpdateDoctorProfile only overwrites the fields that are present.
type UpdateDoctorProfile struct {
	Specialization *string        `json:"specialization,omitempty" validate:"omitnil,min=1,max=100"`
	Qualification  *string        `json:"qualification,omitempty" validate:"omitnil,min=1,max=255"`
	Experience     *int           `json:"experience,omitempty" validate:"omitnil,gte=0,lte=80"`
	Phone          *string        `json:"phone,omitempty" validate:"omitnil,phone"`
	Schedule       []ScheduleSlot `json:"schedule,omitempty" validate:"omitempty,dive"`
}
