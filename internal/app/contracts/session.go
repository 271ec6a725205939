package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, userID, role string, ttl time.Duration) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
