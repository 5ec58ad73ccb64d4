package sessions

import (
	"context"
	"fmt"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/app/services/shared/redis"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type sessionService struct {
	RedisRepository   redis.RedisRepository
	SessionTTLInHours int
}

func NewSessionService(redisRepository redis.RedisRepository, sessionTTLInHours int) SessionService {
	return &sessionService{
		RedisRepository:   redisRepository,
		SessionTTLInHours: sessionTTLInHours,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, user models.UserProfile, upstreamToken string) (*models.Session, error) {
	session := &models.Session{
		ID:            uuid.NewString(),
		User:          user,
		UpstreamToken: upstreamToken,
		CreatedAt:     time.Now(),
	}

	redisKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.ID)
	ttl := time.Duration(svc.SessionTTLInHours) * time.Hour
	err := svc.RedisRepository.Set(ctx, redisKey, session, ttl)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	redisKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	sessionData, err := svc.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return svc.ParseSessionData(ctx, sessionData)
}

func (svc *sessionService) RefreshSession(ctx context.Context, session *models.Session) error {
	redisKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.ID)
	ttl := time.Duration(svc.SessionTTLInHours) * time.Hour
	return svc.RedisRepository.Set(ctx, redisKey, session, ttl)
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	redisKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	return svc.RedisRepository.Delete(ctx, redisKey)
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}
