package users

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"taskgo-service/internal/app/config"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/app/services/pharmacy"
	"taskgo-service/internal/app/services/shared/sessions"
	"taskgo-service/internal/app/services/shared/storage"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/dto/responses"
	"taskgo-service/internal/pkg/exceptions"
	"taskgo-service/internal/pkg/utils"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type userUsecase struct {
	UserClient     pharmacy.UserClient
	SessionService sessions.SessionService
	Storage        storage.Storage
	InternalConfig *config.InternalConfig
}

func NewUserUsecase(
	userClient pharmacy.UserClient,
	sessionService sessions.SessionService,
	minioStorage storage.Storage,
	internalConfig *config.InternalConfig,
) UserUsecase {
	return &userUsecase{
		UserClient:     userClient,
		SessionService: sessionService,
		Storage:        minioStorage,
		InternalConfig: internalConfig,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	user, err := uc.UserClient.GetUser(ctx, session.UpstreamToken, session.User.ID)
	if err != nil {
		return nil, err
	}
	return &responses.Profile{User: *user}, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.Profile, error) {
	payload := &requests.UpstreamUpdateUser{
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		Gender:            request.Gender,
		DateOfBirth:       request.DateOfBirth,
		Email:             request.Email,
		MobileNumber:      request.MobilePrefix + request.MobileNumber,
		HomeAddress:       request.HomeAddress,
		NominatedPharmacy: request.NominatedPharmacy,
		UpdatesOffers:     request.UpdatesOffers,
	}
	// The password only travels upstream when both fields are filled in and
	// agree. Anything else leaves the current password untouched.
	if request.Password != "" && request.Password == request.ConfirmPassword {
		payload.Password = request.Password
	}

	user, err := uc.UserClient.UpdateUser(ctx, session.UpstreamToken, session.User.ID, payload)
	if err != nil {
		return nil, err
	}

	session.User = *user
	if err := uc.SessionService.RefreshSession(ctx, session); err != nil {
		return nil, err
	}

	return &responses.Profile{User: *user}, nil
}

func (uc *userUsecase) UploadProfileImage(ctx context.Context, session *models.Session, file io.Reader, fileHeader *multipart.FileHeader) (*responses.Profile, error) {
	maxSize := int64(uc.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB) * 1024 * 1024
	if fileHeader.Size > maxSize {
		return nil, exceptions.ErrImageTooLarge(nil)
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[extension] {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("extension %s not allowed", extension))
	}

	objectName := utils.GenerateFileName("profile", session.User.ID, extension)
	_, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.InternalConfig.Minio.BucketName, objectName)
	if err != nil {
		return nil, err
	}

	imageURL := fmt.Sprintf("%s/%s/%s", uc.InternalConfig.Minio.PublicUrl, uc.InternalConfig.Minio.BucketName, objectName)
	payload := &requests.UpstreamProfileImage{
		ImageURL: imageURL,
		ID:       session.User.ID,
	}

	user, err := uc.UserClient.UploadProfileImage(ctx, session.UpstreamToken, payload)
	if err != nil {
		return nil, err
	}

	session.User = *user
	if err := uc.SessionService.RefreshSession(ctx, session); err != nil {
		return nil, err
	}

	return &responses.Profile{User: *user}, nil
}

func (uc *userUsecase) RemoveProfileImage(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	user, err := uc.UserClient.RemoveProfileImage(ctx, session.UpstreamToken, session.User.ID)
	if err != nil {
		return nil, err
	}

	session.User = *user
	if err := uc.SessionService.RefreshSession(ctx, session); err != nil {
		return nil, err
	}

	return &responses.Profile{User: *user}, nil
}
