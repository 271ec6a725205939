package utils

import (
	"hospital-service/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

func trimStringPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func capitalize(input string) string {
	if len(input) == 0 {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func sanitizeScheduleSlots(slots []requests.ScheduleSlot) {
	for i := range slots {
		slots[i].Day = capitalize(strings.TrimSpace(slots[i].Day))
		slots[i].StartTime = strings.TrimSpace(slots[i].StartTime)
		slots[i].EndTime = strings.TrimSpace(slots[i].EndTime)
	}
}

func sanitizeEmergencyContact(contact *requests.EmergencyContact) {
	if contact == nil {
		return
	}
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Phone = strings.TrimSpace(contact.Phone)
	contact.Relation = strings.TrimSpace(contact.Relation)
}

// SanitizeRegisterAccount never touches the password.
func SanitizeRegisterAccount(input *requests.RegisterAccount) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
}

func SanitizePatientRegistration(input *requests.PatientRegistration) {
	SanitizeRegisterAccount(&input.RegisterAccount)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	sanitizeEmergencyContact(input.EmergencyContact)
}

func SanitizeDoctorRegistration(input *requests.DoctorRegistration) {
	SanitizeRegisterAccount(&input.RegisterAccount)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.Phone = strings.TrimSpace(input.Phone)
	sanitizeScheduleSlots(input.Schedule)
}

func SanitizeLoginRequest(input *requests.LoginUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeUpdateDoctorProfile(input *requests.UpdateDoctorProfile) {
	trimStringPointer(input.Specialization)
	trimStringPointer(input.Qualification)
	trimStringPointer(input.Phone)
	sanitizeScheduleSlots(input.Schedule)
}

func SanitizeUpdatePatientProfile(input *requests.UpdatePatientProfile) {
	trimStringPointer(input.DateOfBirth)
	trimStringPointer(input.Phone)
	trimStringPointer(input.Address)
	sanitizeEmergencyContact(input.EmergencyContact)
}

func SanitizeAppendMedicalHistory(input *requests.AppendMedicalHistory) {
	input.Condition = strings.TrimSpace(input.Condition)
	input.Date = strings.TrimSpace(input.Date)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCreateAppointment(input *requests.CreateAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.AppointmentTime = strings.TrimSpace(input.AppointmentTime)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeUpdateAppointmentStatus(input *requests.UpdateAppointmentStatus) {
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	trimStringPointer(input.Notes)
}
