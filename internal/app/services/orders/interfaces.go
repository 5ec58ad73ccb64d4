package orders

import (
	"context"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/dto/responses"
)

type OrderUsecase interface {
	GetDraft(ctx context.Context, sessionID string) (*responses.OrderDraft, error)
	AddMedicine(ctx context.Context, sessionID string, request *requests.AddMedicine) (*responses.OrderDraft, error)
	IncrementMedicine(ctx context.Context, sessionID string, request *requests.MedicineRef) (*responses.OrderDraft, error)
	DecrementMedicine(ctx context.Context, sessionID string, request *requests.MedicineRef) (*responses.OrderDraft, error)
	RemoveMedicine(ctx context.Context, sessionID string, request *requests.MedicineRef) (*responses.OrderDraft, error)
	SetMedicineQuantity(ctx context.Context, sessionID string, request *requests.SetMedicineQuantity) (*responses.OrderDraft, error)
	SetCollection(ctx context.Context, sessionID string, request *requests.SetCollection) (*responses.OrderDraft, error)
	SetReminder(ctx context.Context, sessionID string, request *requests.SetReminder) (*responses.OrderDraft, error)
	NextStep(ctx context.Context, sessionID string) (*responses.OrderDraft, error)
	PreviousStep(ctx context.Context, sessionID string) (*responses.OrderDraft, error)
	SubmitOrder(ctx context.Context, session *models.Session) error
	ListOrders(ctx context.Context, session *models.Session) (*responses.OrderList, error)
	GetOrder(ctx context.Context, session *models.Session, orderID string) (*responses.OrderDetail, error)
	Reorder(ctx context.Context, session *models.Session, orderID string) error
}
