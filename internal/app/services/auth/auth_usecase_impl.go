package auth

import (
	"context"
	"fmt"
	"taskgo-service/internal/app/config"
	"taskgo-service/internal/app/services/pharmacy"
	"taskgo-service/internal/app/services/shared/redis"
	"taskgo-service/internal/app/services/shared/sessions"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/dto/responses"
	"taskgo-service/internal/pkg/exceptions"
	"taskgo-service/internal/pkg/utils"
	"time"
)

type authUsecase struct {
	AuthClient      pharmacy.AuthClient
	SessionService  sessions.SessionService
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	authClient pharmacy.AuthClient,
	sessionService sessions.SessionService,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		AuthClient:      authClient,
		SessionService:  sessionService,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) error {
	payload := &requests.UpstreamSignup{
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		Gender:            request.Gender,
		DateOfBirth:       request.DateOfBirth,
		Email:             request.Email,
		MobileNumber:      request.MobilePrefix + request.MobileNumber,
		HomeAddress:       request.HomeAddress,
		NominatedPharmacy: request.NominatedPharmacy,
		Password:          request.Password,
		PrivacyPolicy:     request.PrivacyPolicy,
		UpdatesOffers:     request.UpdatesOffers,
	}
	return uc.AuthClient.Signup(ctx, payload)
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	attemptsKey := fmt.Sprintf(constvars.RedisLoginAttemptsKeyFormat, request.Email)
	attempts, err := uc.RedisRepository.IncrementWithTTL(ctx, attemptsKey, time.Minute)
	if err != nil {
		return nil, err
	}
	if attempts > int64(uc.InternalConfig.App.LoginAttemptsPerMinute) {
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	upstream, err := uc.AuthClient.Login(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionService.CreateSession(ctx, upstream.User, upstream.Token)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.ID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Login{
		Token: token,
		User:  upstream.User,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	session, err := uc.SessionService.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	logoutErr := uc.AuthClient.Logout(ctx, session.UpstreamToken)

	// The local draft and session are cleared even when the upstream logout
	// fails, so the caller is signed out of the portal either way.
	draftKey := fmt.Sprintf(constvars.RedisOrderDraftKeyFormat, sessionID)
	if err := uc.RedisRepository.Delete(ctx, draftKey); err != nil {
		return err
	}
	if err := uc.SessionService.DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	return logoutErr
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	return uc.AuthClient.ForgotPassword(ctx, request.Email)
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	// A missing token means the reset link was tampered with or never
	// followed, so the backend is not called at all.
	if request.Token == "" {
		return exceptions.ErrResetTokenMissing(nil)
	}

	payload := &requests.UpstreamResetPassword{
		Token:    request.Token,
		Password: request.Password,
	}
	return uc.AuthClient.ResetPassword(ctx, payload)
}
