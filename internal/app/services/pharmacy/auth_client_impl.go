package pharmacy

import (
	"context"
	"net/http"
	"sync"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

var (
	authClientInstance AuthClient
	onceAuthClient     sync.Once
)

type authClient struct {
	restClient
}

func NewAuthClient(baseUrl, apiKey string, timeoutInSeconds int, logger *zap.Logger) AuthClient {
	onceAuthClient.Do(func() {
		authClientInstance = &authClient{
			restClient: restClient{
				BaseUrl:    baseUrl,
				APIKey:     apiKey,
				HTTPClient: &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
				Log:        logger,
			},
		}
	})
	return authClientInstance
}

func (c *authClient) Login(ctx context.Context, email, password string) (*responses.UpstreamAuth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := map[string]string{"email": email, "password": password}
	result := new(responses.UpstreamAuth)
	err := c.do(ctx, constvars.MethodPost, constvars.UpstreamLogin, "", payload, result, constvars.ResourceSession)
	if err != nil {
		c.Log.Error("authClient.Login error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("authClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.User.ID),
	)
	return result, nil
}

func (c *authClient) Signup(ctx context.Context, request *requests.UpstreamSignup) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authClient.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := c.do(ctx, constvars.MethodPost, constvars.UpstreamSignup, "", request, nil, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("authClient.Signup error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("authClient.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *authClient) Logout(ctx context.Context, upstreamToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authClient.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := c.do(ctx, constvars.MethodPost, constvars.UpstreamLogout, upstreamToken, nil, nil, constvars.ResourceSession)
	if err != nil {
		c.Log.Error("authClient.Logout error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("authClient.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *authClient) ForgotPassword(ctx context.Context, email string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authClient.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := map[string]string{"email": email}
	err := c.do(ctx, constvars.MethodPost, constvars.UpstreamForgotPassword, "", payload, nil, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("authClient.ForgotPassword error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("authClient.ForgotPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *authClient) ResetPassword(ctx context.Context, request *requests.UpstreamResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authClient.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := c.do(ctx, constvars.MethodPost, constvars.UpstreamResetPassword, "", request, nil, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("authClient.ResetPassword error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("authClient.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
