package middlewares

import (
	"taskgo-service/internal/app/config"
	"taskgo-service/internal/app/services/shared/sessions"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService sessions.SessionService
	InternalConfig *config.InternalConfig
	LoginLimiter   *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, sessionService sessions.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		LoginLimiter:   NewRateLimiter(internalConfig.App.MaxTimeRequestsPerSeconds, time.Second, 5*time.Minute),
	}
}
