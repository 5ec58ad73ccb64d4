package pharmacy

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

var (
	userClientInstance UserClient
	onceUserClient     sync.Once
)

type userClient struct {
	restClient
}

func NewUserClient(baseUrl, apiKey string, timeoutInSeconds int, logger *zap.Logger) UserClient {
	onceUserClient.Do(func() {
		userClientInstance = &userClient{
			restClient: restClient{
				BaseUrl:    baseUrl,
				APIKey:     apiKey,
				HTTPClient: &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
				Log:        logger,
			},
		}
	})
	return userClientInstance
}

func (c *userClient) GetUser(ctx context.Context, upstreamToken, userID string) (*models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userClient.GetUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	result := new(responses.UpstreamUser)
	path := fmt.Sprintf("%s/%s", constvars.UpstreamGetUser, userID)
	err := c.do(ctx, constvars.MethodGet, path, upstreamToken, nil, result, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("userClient.GetUser error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("userClient.GetUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.User.ID),
	)
	return &result.User, nil
}

func (c *userClient) UpdateUser(ctx context.Context, upstreamToken, userID string, request *requests.UpstreamUpdateUser) (*models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userClient.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	result := new(responses.UpstreamUser)
	path := fmt.Sprintf("%s/%s", constvars.UpstreamUpdateUser, userID)
	err := c.do(ctx, constvars.MethodPost, path, upstreamToken, request, result, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("userClient.UpdateUser error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("userClient.UpdateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.User.ID),
	)
	return &result.User, nil
}

func (c *userClient) UploadProfileImage(ctx context.Context, upstreamToken string, request *requests.UpstreamProfileImage) (*models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userClient.UploadProfileImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.ID),
	)

	result := new(responses.UpstreamUser)
	err := c.do(ctx, constvars.MethodPost, constvars.UpstreamUploadProfileImage, upstreamToken, request, result, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("userClient.UploadProfileImage error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("userClient.UploadProfileImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.User.ID),
	)
	return &result.User, nil
}

func (c *userClient) RemoveProfileImage(ctx context.Context, upstreamToken, userID string) (*models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userClient.RemoveProfileImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	payload := map[string]string{"id": userID}
	result := new(responses.UpstreamUser)
	err := c.do(ctx, constvars.MethodPost, constvars.UpstreamRemoveProfileImage, upstreamToken, payload, result, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("userClient.RemoveProfileImage error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("userClient.RemoveProfileImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.User.ID),
	)
	return &result.User, nil
}
