package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorKey          = "error"
	LoggingLocationKey       = "location"

	LoggingUserIDKey        = "user_id"
	LoggingRoleKey          = "role"
	LoggingSessionIDKey     = "session_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingStatusKey        = "status"
	LoggingActionKey        = "action"
	LoggingRedisKey         = "redis_key"
	LoggingQueueKey         = "queue"
	LoggingBucketKey        = "bucket"
	LoggingObjectNameKey    = "object_name"
	LoggingCollectionKey    = "collection"
)
