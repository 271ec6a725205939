package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"alphanum":  "must contain only alphanumeric characters",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"len":       "must be %s characters long",
	"oneof":     "must be one of [%s]",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"hhmm":      "must be a time in HH:MM format",
	"yyyymmdd":  "must be a date in YYYY-MM-DD format",
	"weekday":   "must be a day of the week, such as Monday",
	"phone":     "must be a valid phone number",
	"role":      "must be either 'doctor' or 'patient'",
	"uuid4":     "must be a valid identifier",
	"dive":      "is invalid",
	"not_after": "must not be in the future",
	"after":     "must be after %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
	"after": true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidCredentials            = "invalid credentials"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientLoginRequired                 = "authentication required"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientProfileNotFound               = "%s profile not found"
	ErrClientAppointmentAlreadyFinalized   = "appointment is already %s and can no longer be changed"
	ErrClientRequestBodyTooLarge           = "request body is too large"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again in %d seconds"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevRequestBodyTooLarge      = "request body exceeds the configured limit"
	ErrDevUnknownRegistrationRole  = "registration role '%s' is not supported"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevDocumentNotFound         = "%s document not found"
	ErrDevProfileNotFound          = "%s profile not found for user"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id not found in context"
	ErrDevMissingSessionData       = "session data not found in context"

	// Usecase messages
	ErrDevEmailAlreadyExists              = "email already exists"
	ErrDevUsernameAlreadyExists           = "username already exists"
	ErrDevAppointmentStatusTransition     = "appointment %s cannot transition from %s to %s"
	ErrDevAppointmentStatusNotTransitable = "requested status '%s' is not a valid transition target"
	ErrDevRegistrationRollback            = "failed to roll back account after profile creation failure"
	ErrDevTooManyLoginAttempts            = "login attempts for '%s' exceeded the limit"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthSessionRevoked        = "session not found or already revoked"
	ErrDevAuthPermissionDenied      = "permission denied for role '%s' on action '%s'"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthPolicyEvaluation      = "failed to evaluate authorization policy"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on collection %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisGetNoData  = "no data found in redis with key '%s'"
	ErrDevRedisIncrement  = "failed to increment counter in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue '%s'"
)
