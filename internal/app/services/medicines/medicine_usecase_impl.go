package medicines

import (
	"context"
	"strings"
	"taskgo-service/internal/app/config"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/app/services/pharmacy"
	"taskgo-service/internal/app/services/shared/redis"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/responses"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type medicineUsecase struct {
	MedicineClient  pharmacy.MedicineClient
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewMedicineUsecase(
	medicineClient pharmacy.MedicineClient,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) MedicineUsecase {
	return &medicineUsecase{
		MedicineClient:  medicineClient,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *medicineUsecase) ListMedicines(ctx context.Context, session *models.Session, search string) (*responses.MedicineList, error) {
	catalog, err := uc.getCatalog(ctx, session)
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]models.Medicine, 0, len(catalog))
		for _, medicine := range catalog {
			if strings.Contains(strings.ToLower(medicine.Name), needle) {
				filtered = append(filtered, medicine)
			}
		}
		catalog = filtered
	}

	return &responses.MedicineList{Medicines: catalog}, nil
}

// getCatalog serves the medicine catalog cache aside. The catalog is shared
// across sessions since the backend returns the same list to every user.
func (uc *medicineUsecase) getCatalog(ctx context.Context, session *models.Session) ([]models.Medicine, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisMedicineCatalogKey)
	if err == nil && cached != "" {
		var catalog []models.Medicine
		if err := json.Unmarshal([]byte(cached), &catalog); err == nil {
			return catalog, nil
		}
		uc.Log.Warn("medicineUsecase.getCatalog cached catalog is corrupt, refetching")
	}

	catalog, err := uc.MedicineClient.GetMedicines(ctx, session.UpstreamToken)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.MedicineCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisMedicineCatalogKey, catalog, ttl); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("medicineUsecase.getCatalog failed to cache catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return catalog, nil
}
