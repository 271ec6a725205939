package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX  = "HSPTL_SVC_"
	SESSION_KEY_PREFIX = "session:"

	LOGIN_LIMITER_GROUP           = "LOGIN"
	PROFILE_PICTURE_OBJECT_PREFIX = "profile-pictures"
)

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	AppointmentEventCreated       = "appointment.created"
	AppointmentEventStatusChanged = "appointment.status_changed"
)

const (
	ResourceUser        = "user"
	ResourceDoctor      = "doctor"
	ResourcePatient     = "patient"
	ResourceAppointment = "appointment"
	ResourceSession     = "session"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
	MongoCollectionAppointments = "appointments"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ActionCreateAppointment       = "createAppointment"
	ActionListAppointments        = "listAppointments"
	ActionUpdateAppointmentStatus = "updateAppointmentStatus"
	ActionCancelAppointment       = "cancelAppointment"
	ActionUpdateDoctorProfile     = "updateDoctorProfile"
	ActionUpdatePatientProfile    = "updatePatientProfile"
	ActionAppendMedicalHistory    = "appendMedicalHistory"
	ActionViewPatientRecord       = "viewPatientRecord"
	ActionViewOwnProfile          = "viewOwnProfile"
	ActionUploadProfilePicture    = "uploadProfilePicture"
	ActionLogout                  = "logout"
)

const (
	PolicyScopeAny = "any"
	PolicyScopeOwn = "own"
)
