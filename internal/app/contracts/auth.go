package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request requests.RegistrationRequest) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error)
	GetProfile(ctx context.Context, session *models.Session) (*responses.Profile, error)
	Logout(ctx context.Context, session *models.Session) error
	UploadProfilePicture(ctx context.Context, session *models.Session, request *requests.UploadProfilePicture) (*responses.Profile, error)
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}
