package sessions

import (
	"context"
	"taskgo-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, user models.UserProfile, upstreamToken string) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	RefreshSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
}
