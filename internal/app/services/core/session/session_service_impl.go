package session

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		now:             time.Now,
	}
}

func sessionKey(sessionID string) string {
	return constvars.SESSION_KEY_PREFIX + sessionID
}

func (svc *sessionService) CreateSession(ctx context.Context, userID, role string, ttl time.Duration) (*models.Session, error) {
	session := &models.Session{
		SessionID: utils.GenerateID(),
		UserID:    userID,
		Role:      role,
		ExpiresAt: svc.now().Add(ttl).UTC(),
	}

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession reports a revoked session when the key is gone or expired.
func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionRevoked(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if session.IsExpired(svc.now()) {
		return nil, exceptions.ErrSessionRevoked(nil)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
