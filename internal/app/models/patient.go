package models

import (
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"time"
)

type EmergencyContact struct {
	Name     string `bson:"name"`
	Phone    string `bson:"phone"`
	Relation string `bson:"relation"`
}

func NewEmergencyContact(contact *requests.EmergencyContact) *EmergencyContact {
	if contact == nil {
		return nil
	}
	return &EmergencyContact{
		Name:     contact.Name,
		Phone:    contact.Phone,
		Relation: contact.Relation,
	}
}

type MedicalHistoryEntry struct {
	Condition string    `bson:"condition"`
	Date      time.Time `bson:"date"`
	Notes     string    `bson:"notes,omitempty"`
}

type Patient struct {
	ID               string                `bson:"_id"`
	UserID           string                `bson:"userId"`
	DateOfBirth      time.Time             `bson:"dateOfBirth"`
	Phone            string                `bson:"phone"`
	Address          string                `bson:"address"`
	EmergencyContact *EmergencyContact     `bson:"emergencyContact,omitempty"`
	MedicalHistory   []MedicalHistoryEntry `bson:"medicalHistory"`
	TimeModel        `bson:",inline"`
}

func (p *Patient) ToResponse(owner *User) *responses.Patient {
	history := make([]responses.MedicalHistoryEntry, 0, len(p.MedicalHistory))
	for _, entry := range p.MedicalHistory {
		history = append(history, responses.MedicalHistoryEntry{
			Condition: entry.Condition,
			Date:      entry.Date.Format(constvars.DateLayoutYYYYMMDD),
			Notes:     entry.Notes,
		})
	}

	response := &responses.Patient{
		ID:             p.ID,
		UserID:         p.UserID,
		DateOfBirth:    p.DateOfBirth.Format(constvars.DateLayoutYYYYMMDD),
		Phone:          p.Phone,
		Address:        p.Address,
		MedicalHistory: history,
	}
	if p.EmergencyContact != nil {
		response.EmergencyContact = &responses.EmergencyContact{
			Name:     p.EmergencyContact.Name,
			Phone:    p.EmergencyContact.Phone,
			Relation: p.EmergencyContact.Relation,
		}
	}
	if owner != nil {
		response.FirstName = owner.FirstName
		response.LastName = owner.LastName
		response.Email = owner.Email
	}
	return response
}
