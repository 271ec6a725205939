package responses

type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

type MedicalHistoryEntry struct {
	Condition string `json:"condition"`
	Date      string `json:"date"`
	Notes     string `json:"notes,omitempty"`
}

type Patient struct {
	ID               string                `json:"id"`
	UserID           string                `json:"userId"`
	FirstName        string                `json:"firstName,omitempty"`
	LastName         string                `json:"lastName,omitempty"`
	Email            string                `json:"email,omitempty"`
	DateOfBirth      string                `json:"dateOfBirth"`
	Phone            string                `json:"phone"`
	Address          string                `json:"address"`
	EmergencyContact *EmergencyContact     `json:"emergencyContact,omitempty"`
	MedicalHistory   []MedicalHistoryEntry `json:"medicalHistory"`
}
