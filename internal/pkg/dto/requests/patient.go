package requests

type EmergencyContact struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,phone"`
	Relation string `json:"relation" validate:"required,max=50"`
}

// UpdatePatientProfile only overwrites the fields that are present.
// Medical history is changed through AppendMedicalHistory.
type UpdatePatientProfile struct {
	DateOfBirth      *string           `json:"dateOfBirth,omitempty" validate:"omitnil,yyyymmdd,not_after"`
	Phone            *string           `json:"phone,omitempty" validate:"omitnil,phone"`
	Address          *string           `json:"address,omitempty" validate:"omitnil,min=1,max=255"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty" validate:"omitempty"`
}

type AppendMedicalHistory struct {
	Condition string `json:"condition" validate:"required,max=255"`
	Date      string `json:"date" validate:"required,yyyymmdd"`
	Notes     string `json:"notes" validate:"max=2000"`
}
