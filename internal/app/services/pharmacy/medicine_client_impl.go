package pharmacy

import (
	"context"
	"net/http"
	"sync"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

var (
	medicineClientInstance MedicineClient
	onceMedicineClient     sync.Once
)

type medicineClient struct {
	restClient
}

func NewMedicineClient(baseUrl, apiKey string, timeoutInSeconds int, logger *zap.Logger) MedicineClient {
	onceMedicineClient.Do(func() {
		medicineClientInstance = &medicineClient{
			restClient: restClient{
				BaseUrl:    baseUrl,
				APIKey:     apiKey,
				HTTPClient: &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
				Log:        logger,
			},
		}
	})
	return medicineClientInstance
}

func (c *medicineClient) GetMedicines(ctx context.Context, upstreamToken string) ([]models.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicineClient.GetMedicines called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(responses.UpstreamMedicines)
	err := c.do(ctx, constvars.MethodGet, constvars.UpstreamGetMedicines, upstreamToken, nil, result, constvars.ResourceMedicine)
	if err != nil {
		c.Log.Error("medicineClient.GetMedicines error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("medicineClient.GetMedicines succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(result.Medicines)),
	)
	return result.Medicines, nil
}
