package pharmacy

import (
	"context"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/dto/responses"
)

type AuthClient interface {
	Login(ctx context.Context, email, password string) (*responses.UpstreamAuth, error)
	Signup(ctx context.Context, request *requests.UpstreamSignup) error
	Logout(ctx context.Context, upstreamToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request *requests.UpstreamResetPassword) error
}

type UserClient interface {
	GetUser(ctx context.Context, upstreamToken, userID string) (*models.UserProfile, error)
	UpdateUser(ctx context.Context, upstreamToken, userID string, request *requests.UpstreamUpdateUser) (*models.UserProfile, error)
	UploadProfileImage(ctx context.Context, upstreamToken string, request *requests.UpstreamProfileImage) (*models.UserProfile, error)
	RemoveProfileImage(ctx context.Context, upstreamToken, userID string) (*models.UserProfile, error)
}

type MedicineClient interface {
	GetMedicines(ctx context.Context, upstreamToken string) ([]models.Medicine, error)
}

type OrderClient interface {
	CreateOrder(ctx context.Context, upstreamToken string, request *requests.UpstreamCreateOrder) error
	GetOrders(ctx context.Context, upstreamToken, userID string) ([]models.Order, error)
	GetOrder(ctx context.Context, upstreamToken, orderID string) (*models.Order, error)
	Reorder(ctx context.Context, upstreamToken, orderID string) error
}
