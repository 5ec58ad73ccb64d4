package users

import (
	"context"
	"io"
	"mime/multipart"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.Profile, error)
	UploadProfileImage(ctx context.Context, session *models.Session, file io.Reader, fileHeader *multipart.FileHeader) (*responses.Profile, error)
	RemoveProfileImage(ctx context.Context, session *models.Session) (*responses.Profile, error)
}
