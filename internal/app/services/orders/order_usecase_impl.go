package orders

import (
	"context"
	"fmt"
	"taskgo-service/internal/app/config"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/app/services/pharmacy"
	"taskgo-service/internal/app/services/shared/notifications"
	"taskgo-service/internal/app/services/shared/redis"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/dto/responses"
	"taskgo-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type orderUsecase struct {
	OrderClient     pharmacy.OrderClient
	RedisRepository redis.RedisRepository
	EventPublisher  notifications.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewOrderUsecase(
	orderClient pharmacy.OrderClient,
	redisRepository redis.RedisRepository,
	eventPublisher notifications.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) OrderUsecase {
	return &orderUsecase{
		OrderClient:     orderClient,
		RedisRepository: redisRepository,
		EventPublisher:  eventPublisher,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *orderUsecase) loadDraft(ctx context.Context, sessionID string) (*models.OrderDraft, error) {
	draftKey := fmt.Sprintf(constvars.RedisOrderDraftKeyFormat, sessionID)
	data, err := uc.RedisRepository.Get(ctx, draftKey)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return NewDraft(), nil
	}

	draft := new(models.OrderDraft)
	if err := json.Unmarshal([]byte(data), draft); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return draft, nil
}

func (uc *orderUsecase) saveDraft(ctx context.Context, sessionID string, draft *models.OrderDraft) error {
	draftKey := fmt.Sprintf(constvars.RedisOrderDraftKeyFormat, sessionID)
	ttl := time.Duration(uc.InternalConfig.App.OrderDraftExpiredTimeInHours) * time.Hour
	return uc.RedisRepository.Set(ctx, draftKey, draft, ttl)
}

func (uc *orderUsecase) mutateDraft(ctx context.Context, sessionID string, mutate func(*models.OrderDraft) error) (*responses.OrderDraft, error) {
	draft, err := uc.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := mutate(draft); err != nil {
		return nil, err
	}
	if err := uc.saveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return &responses.OrderDraft{Draft: *draft}, nil
}

func (uc *orderUsecase) GetDraft(ctx context.Context, sessionID string) (*responses.OrderDraft, error) {
	draft, err := uc.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &responses.OrderDraft{Draft: *draft}, nil
}

func (uc *orderUsecase) AddMedicine(ctx context.Context, sessionID string, request *requests.AddMedicine) (*responses.OrderDraft, error) {
	return uc.mutateDraft(ctx, sessionID, func(draft *models.OrderDraft) error {
		AddMedicine(draft, request.Key, request.Name)
		return nil
	})
}

func (uc *orderUsecase) IncrementMedicine(ctx context.Context, sessionID string, request *requests.MedicineRef) (*responses.OrderDraft, error) {
	return uc.mutateDraft(ctx, sessionID, func(draft *models.OrderDraft) error {
		return IncrementMedicine(draft, request)
	})
}

func (uc *orderUsecase) DecrementMedicine(ctx context.Context, sessionID string, request *requests.MedicineRef) (*responses.OrderDraft, error) {
	return uc.mutateDraft(ctx, sessionID, func(draft *models.OrderDraft) error {
		return DecrementMedicine(draft, request)
	})
}

func (uc *orderUsecase) RemoveMedicine(ctx context.Context, sessionID string, request *requests.MedicineRef) (*responses.OrderDraft, error) {
	return uc.mutateDraft(ctx, sessionID, func(draft *models.OrderDraft) error {
		return RemoveMedicine(draft, request)
	})
}

func (uc *orderUsecase) SetMedicineQuantity(ctx context.Context, sessionID string, request *requests.SetMedicineQuantity) (*responses.OrderDraft, error) {
	return uc.mutateDraft(ctx, sessionID, func(draft *models.OrderDraft) error {
		return SetMedicineQuantity(draft, &request.MedicineRef, request.Quantity)
	})
}

func (uc *orderUsecase) SetCollection(ctx context.Context, sessionID string, request *requests.SetCollection) (*responses.OrderDraft, error) {
	return uc.mutateDraft(ctx, sessionID, func(draft *models.OrderDraft) error {
		SetCollection(draft, request.CollectionMethod, request.AdditionalInfo)
		return nil
	})
}

func (uc *orderUsecase) SetReminder(ctx context.Context, sessionID string, request *requests.SetReminder) (*responses.OrderDraft, error) {
	return uc.mutateDraft(ctx, sessionID, func(draft *models.OrderDraft) error {
		SetReminder(draft, request.Reminder, request.ReminderDate)
		return nil
	})
}

func (uc *orderUsecase) NextStep(ctx context.Context, sessionID string) (*responses.OrderDraft, error) {
	return uc.mutateDraft(ctx, sessionID, Advance)
}

func (uc *orderUsecase) PreviousStep(ctx context.Context, sessionID string) (*responses.OrderDraft, error) {
	return uc.mutateDraft(ctx, sessionID, func(draft *models.OrderDraft) error {
		Back(draft)
		return nil
	})
}

func (uc *orderUsecase) SubmitOrder(ctx context.Context, session *models.Session) error {
	draft, err := uc.loadDraft(ctx, session.ID)
	if err != nil {
		return err
	}
	if draft.Step != models.DraftStepReview {
		return exceptions.ErrDraftNotAtReview(nil)
	}
	if len(draft.Medicines) == 0 {
		return exceptions.ErrDraftNoMedicines(nil)
	}

	payload := &requests.UpstreamCreateOrder{
		Medicines:        draft.Medicines,
		AdditionalInfo:   draft.AdditionalInfo,
		CollectionMethod: draft.CollectionMethod,
		Reminder:         draft.Reminder,
		UserID:           session.User.ID,
		Pharmacy:         session.User.NominatedPharmacy,
	}
	if draft.Reminder {
		payload.ReminderDate = draft.ReminderDate
	}

	err = uc.OrderClient.CreateOrder(ctx, session.UpstreamToken, payload)
	if err != nil {
		return err
	}

	// The order is already placed upstream at this point, so event publish
	// failures are logged instead of failing the request.
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := uc.EventPublisher.PublishOrderPlaced(ctx, session.User.ID, draft); err != nil {
		uc.Log.Warn("orderUsecase.SubmitOrder failed to publish order event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if draft.Reminder {
		if err := uc.EventPublisher.PublishReminderScheduled(ctx, session.User.ID, draft.ReminderDate); err != nil {
			uc.Log.Warn("orderUsecase.SubmitOrder failed to publish reminder event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	// Same reasoning for the draft cleanup: the draft expires on its TTL
	// anyway, so a failed delete never undoes a placed order.
	draftKey := fmt.Sprintf(constvars.RedisOrderDraftKeyFormat, session.ID)
	if err := uc.RedisRepository.Delete(ctx, draftKey); err != nil {
		uc.Log.Warn("orderUsecase.SubmitOrder failed to clear draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return nil
}

func (uc *orderUsecase) ListOrders(ctx context.Context, session *models.Session) (*responses.OrderList, error) {
	orders, err := uc.OrderClient.GetOrders(ctx, session.UpstreamToken, session.User.ID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		// The frontend renders an empty state off a list, never null.
		orders = []models.Order{}
	}
	return &responses.OrderList{Orders: orders}, nil
}

func (uc *orderUsecase) GetOrder(ctx context.Context, session *models.Session, orderID string) (*responses.OrderDetail, error) {
	order, err := uc.OrderClient.GetOrder(ctx, session.UpstreamToken, orderID)
	if err != nil {
		return nil, err
	}
	return &responses.OrderDetail{Order: *order}, nil
}

func (uc *orderUsecase) Reorder(ctx context.Context, session *models.Session, orderID string) error {
	order, err := uc.OrderClient.GetOrder(ctx, session.UpstreamToken, orderID)
	if err != nil {
		return err
	}
	if order.Status == constvars.OrderStatusPending {
		return exceptions.ErrReorderPending(nil)
	}

	return uc.OrderClient.Reorder(ctx, session.UpstreamToken, orderID)
}
