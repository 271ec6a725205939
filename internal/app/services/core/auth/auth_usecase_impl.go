package auth

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/ratelimiter"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository      contracts.UserRepository
	DoctorRepository    contracts.DoctorRepository
	PatientRepository   contracts.PatientRepository
	SessionService      contracts.SessionService
	AuthorizationPolicy contracts.AuthorizationPolicy
	MinioStorage        contracts.Storage
	LoginLimiter        *ratelimiter.AttemptLimiter
	InternalConfig      *config.InternalConfig
	DriverConfig        *config.DriverConfig
	Log                 *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	authorizationPolicy contracts.AuthorizationPolicy,
	minioStorage contracts.Storage,
	loginLimiter *ratelimiter.AttemptLimiter,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:      userRepository,
		DoctorRepository:    doctorRepository,
		PatientRepository:   patientRepository,
		SessionService:      sessionService,
		AuthorizationPolicy: authorizationPolicy,
		MinioStorage:        minioStorage,
		LoginLimiter:        loginLimiter,
		InternalConfig:      internalConfig,
		DriverConfig:        driverConfig,
		Log:                 logger,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, request requests.RegistrationRequest) (*responses.Auth, error) {
	requestID := utils.GetRequestID(ctx)
	account := request.Account()
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, account.Role),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existingUser, err := uc.UserRepository.FindByEmailOrUsername(ctx, account.Email, account.Username)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error checking existing user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		if existingUser.Email == account.Email {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(account.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:        utils.GenerateID(),
		Username:  account.Username,
		Email:     account.Email,
		Password:  hashedPassword,
		Role:      account.Role,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}
	user.SetCreatedAtUpdatedAt()

	err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.createProfile(ctx, user, request)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error creating profile, removing account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		if cleanupErr := uc.UserRepository.DeleteByID(ctx, user.ID); cleanupErr != nil {
			uc.Log.Error("authUsecase.Signup error removing orphaned account",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, user.ID),
				zap.Error(cleanupErr),
			)
		}
		return nil, err
	}

	response, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "user_registered", requestID,
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return response, nil
}

func (uc *authUsecase) createProfile(ctx context.Context, user *models.User, request requests.RegistrationRequest) error {
	switch registration := request.(type) {
	case *requests.PatientRegistration:
		dateOfBirth, err := utils.ParseDate(registration.DateOfBirth)
		if err != nil {
			return exceptions.ErrCannotParseTime(err)
		}
		patient := &models.Patient{
			ID:               utils.GenerateID(),
			UserID:           user.ID,
			DateOfBirth:      dateOfBirth,
			Phone:            registration.Phone,
			Address:          registration.Address,
			EmergencyContact: models.NewEmergencyContact(registration.EmergencyContact),
			MedicalHistory:   []models.MedicalHistoryEntry{},
		}
		patient.SetCreatedAtUpdatedAt()
		return uc.PatientRepository.CreatePatient(ctx, patient)
	case *requests.DoctorRegistration:
		doctor := &models.Doctor{
			ID:             utils.GenerateID(),
			UserID:         user.ID,
			Specialization: registration.Specialization,
			Qualification:  registration.Qualification,
			Experience:     registration.Experience,
			Phone:          registration.Phone,
			Schedule:       models.NewScheduleSlots(registration.Schedule),
		}
		doctor.SetCreatedAtUpdatedAt()
		return uc.DoctorRepository.CreateDoctor(ctx, doctor)
	default:
		return exceptions.ErrUnknownRegistrationRole(user.Role)
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	attempt, err := uc.LoginLimiter.Hit(ctx, request.Email)
	if err != nil {
		return nil, exceptions.ErrRedisIncrement(err)
	}
	if !attempt.Allowed {
		utils.LogSecurityEvent(uc.Log, "login_throttled", requestID,
			zap.Int("attempts", attempt.Attempts),
			zap.Int("retry_after_seconds", attempt.RetryAfterSeconds()),
		)
		return nil, exceptions.ErrTooManyLoginAttempts(request.Email, attempt.RetryAfterSeconds())
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	storedHash := ""
	if user != nil {
		storedHash = user.Password
	}
	if !utils.CheckPasswordHash(request.Password, storedHash) {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	response, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return response, nil
}

// issueToken opens a session and signs a bearer token bound to it.
func (uc *authUsecase) issueToken(ctx context.Context, user *models.User) (*responses.Auth, error) {
	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour

	session, err := uc.SessionService.CreateSession(ctx, user.ID, user.Role, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.issueToken error creating session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateJWT(utils.TokenClaims{
		UserID:    user.ID,
		Role:      user.Role,
		SessionID: session.SessionID,
		IssuedAt:  time.Now().UTC(),
		ExpiresAt: session.ExpiresAt,
	}, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (uc *authUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, constvars.ResourceUser)
	}

	err = uc.AuthorizationPolicy.Authorize(session.Role, constvars.ActionViewOwnProfile, user.ID, session.UserID)
	if err != nil {
		return nil, err
	}

	profile := &responses.Profile{
		User:      user.ToResponse(),
		CreatedAt: user.CreatedAt,
	}

	if user.ProfilePicture != "" {
		expiry := time.Duration(uc.InternalConfig.App.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
		url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.DriverConfig.Minio.BucketName, user.ProfilePicture, expiry)
		if err != nil {
			uc.Log.Error("authUsecase.GetProfile error generating profile picture url",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectNameKey, user.ProfilePicture),
				zap.Error(err),
			)
			return nil, err
		}
		profile.ProfilePictureURL = url
	}

	switch user.Role {
	case constvars.RoleDoctor:
		doctor, err := uc.DoctorRepository.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			profile.DoctorDetails = doctor.ToResponse(user)
		}
	case constvars.RolePatient:
		patient, err := uc.PatientRepository.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			profile.PatientDetails = patient.ToResponse(user)
		}
	}

	uc.Log.Info("authUsecase.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return profile, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) UploadProfilePicture(ctx context.Context, session *models.Session, request *requests.UploadProfilePicture) (*responses.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.UploadProfilePicture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	err := uc.AuthorizationPolicy.Authorize(session.Role, constvars.ActionUploadProfilePicture, session.UserID, session.UserID)
	if err != nil {
		return nil, err
	}

	maxSize := uc.InternalConfig.App.MinioProfilePictureMaxUploadSizeInMB * 1024 * 1024
	contentType, err := utils.ValidateImage(request.Data, maxSize)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}

	objectName := utils.GenerateFileName(constvars.PROFILE_PICTURE_OBJECT_PREFIX, session.UserID, utils.FileExtensionFromContentType(contentType))
	objectName, err = uc.MinioStorage.UploadFile(ctx, request.Data, contentType, uc.DriverConfig.Minio.BucketName, objectName)
	if err != nil {
		uc.Log.Error("authUsecase.UploadProfilePicture error uploading to storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, uc.DriverConfig.Minio.BucketName),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.UserRepository.UpdateProfilePicture(ctx, session.UserID, objectName)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "profile_picture_uploaded", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return uc.GetProfile(ctx, session)
}

// Authenticate resolves a bearer token to its live session.
func (uc *authUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionService.GetSession(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return session, nil
}
