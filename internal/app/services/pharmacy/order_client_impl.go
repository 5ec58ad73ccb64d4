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
	orderClientInstance OrderClient
	onceOrderClient     sync.Once
)

type orderClient struct {
	restClient
}

func NewOrderClient(baseUrl, apiKey string, timeoutInSeconds int, logger *zap.Logger) OrderClient {
	onceOrderClient.Do(func() {
		orderClientInstance = &orderClient{
			restClient: restClient{
				BaseUrl:    baseUrl,
				APIKey:     apiKey,
				HTTPClient: &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
				Log:        logger,
			},
		}
	})
	return orderClientInstance
}

func (c *orderClient) CreateOrder(ctx context.Context, upstreamToken string, request *requests.UpstreamCreateOrder) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderClient.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	err := c.do(ctx, constvars.MethodPost, constvars.UpstreamCreateOrders, upstreamToken, request, nil, constvars.ResourceOrder)
	if err != nil {
		c.Log.Error("orderClient.CreateOrder error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("orderClient.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)
	return nil
}

func (c *orderClient) GetOrders(ctx context.Context, upstreamToken, userID string) ([]models.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderClient.GetOrders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	result := new(responses.UpstreamOrders)
	path := fmt.Sprintf("%s/%s", constvars.UpstreamGetOrders, userID)
	err := c.do(ctx, constvars.MethodGet, path, upstreamToken, nil, result, constvars.ResourceOrder)
	if err != nil {
		c.Log.Error("orderClient.GetOrders error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("orderClient.GetOrders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(result.Orders)),
	)
	return result.Orders, nil
}

func (c *orderClient) GetOrder(ctx context.Context, upstreamToken, orderID string) (*models.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderClient.GetOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	result := new(responses.UpstreamOrder)
	path := fmt.Sprintf("%s/%s", constvars.UpstreamGetOrder, orderID)
	err := c.do(ctx, constvars.MethodGet, path, upstreamToken, nil, result, constvars.ResourceOrder)
	if err != nil {
		c.Log.Error("orderClient.GetOrder error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("orderClient.GetOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, result.Order.ID),
	)
	return &result.Order, nil
}

func (c *orderClient) Reorder(ctx context.Context, upstreamToken, orderID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderClient.Reorder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	payload := requests.UpstreamReorder{OrderID: orderID}
	err := c.do(ctx, constvars.MethodPost, constvars.UpstreamReorder, upstreamToken, &payload, nil, constvars.ResourceOrder)
	if err != nil {
		c.Log.Error("orderClient.Reorder error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("orderClient.Reorder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return nil
}
