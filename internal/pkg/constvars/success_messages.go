package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth
	SignupSuccessMessage                = "user created successfully"
	LoginSuccessMessage                 = "login successful"
	LogoutSuccessMessage                = "successfully logout"
	ProfileGetSuccessMessage            = "get profile successfully"
	ProfilePictureUpdatedSuccessMessage = "profile picture updated successfully"

	// Doctors
	GetDoctorsSuccessMessage    = "get doctors successfully"
	GetDoctorSuccessMessage     = "get doctor successfully"
	DoctorProfileUpdatedMessage = "doctor profile updated"

	// Patients
	GetPatientsSuccessMessage    = "get patients successfully"
	GetPatientSuccessMessage     = "get patient successfully"
	PatientProfileUpdatedMessage = "patient profile updated"
	MedicalHistoryAddedMessage   = "medical history added"

	// Appointments
	AppointmentCreatedSuccessMessage   = "appointment created successfully"
	GetAppointmentSuccessMessage       = "get appointments successfully"
	AppointmentUpdatedSuccessMessage   = "appointment updated"
	AppointmentCancelledSuccessMessage = "appointment cancelled successfully"

	HealthCheckSuccessMessage  = "ok"
	HealthCheckDegradedMessage = "one or more dependencies are unavailable"
)
