package users

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"taskgo-service/internal/app/config"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserClient struct {
	mock.Mock
}

func (m *MockUserClient) GetUser(ctx context.Context, upstreamToken, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, upstreamToken, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserClient) UpdateUser(ctx context.Context, upstreamToken, userID string, request *requests.UpstreamUpdateUser) (*models.UserProfile, error) {
	args := m.Called(ctx, upstreamToken, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserClient) UploadProfileImage(ctx context.Context, upstreamToken string, request *requests.UpstreamProfileImage) (*models.UserProfile, error) {
	args := m.Called(ctx, upstreamToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserClient) RemoveProfileImage(ctx context.Context, upstreamToken, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, upstreamToken, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user models.UserProfile, upstreamToken string) (*models.Session, error) {
	args := m.Called(ctx, user, upstreamToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) RefreshSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, file, fileHeader, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) RemoveFile(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Minio: config.AppMinio{
			BucketName:                      "profile-pictures",
			PublicUrl:                       "http://localhost:9000",
			ProfilePictureMaxUploadSizeInMB: 2,
		},
	}
}

func testSession() *models.Session {
	return &models.Session{
		ID:            "session-1",
		UpstreamToken: "upstream-token",
		User:          models.UserProfile{ID: "user-1"},
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Run("Matching Passwords Are Forwarded", func(t *testing.T) {
		updated := &models.UserProfile{ID: "user-1", FirstName: "Jane"}

		mockClient := new(MockUserClient)
		mockClient.On("UpdateUser", mock.Anything, "upstream-token", "user-1", mock.MatchedBy(func(request *requests.UpstreamUpdateUser) bool {
			return request.Password == "newpassword1"
		})).Return(updated, nil)

		mockSessions := new(MockSessionService)
		mockSessions.On("RefreshSession", mock.Anything, mock.Anything).Return(nil)

		uc := NewUserUsecase(mockClient, mockSessions, new(MockStorage), testInternalConfig())

		response, err := uc.UpdateProfile(context.Background(), testSession(), &requests.UpdateProfile{
			FirstName:       "Jane",
			Password:        "newpassword1",
			ConfirmPassword: "newpassword1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Jane", response.User.FirstName)
		mockClient.AssertExpectations(t)
	})

	t.Run("Mismatched Passwords Are Dropped", func(t *testing.T) {
		updated := &models.UserProfile{ID: "user-1"}

		mockClient := new(MockUserClient)
		mockClient.On("UpdateUser", mock.Anything, "upstream-token", "user-1", mock.MatchedBy(func(request *requests.UpstreamUpdateUser) bool {
			return request.Password == ""
		})).Return(updated, nil)

		mockSessions := new(MockSessionService)
		mockSessions.On("RefreshSession", mock.Anything, mock.Anything).Return(nil)

		uc := NewUserUsecase(mockClient, mockSessions, new(MockStorage), testInternalConfig())

		_, err := uc.UpdateProfile(context.Background(), testSession(), &requests.UpdateProfile{
			Password:        "newpassword1",
			ConfirmPassword: "different1",
		})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Session Is Refreshed With The Updated User", func(t *testing.T) {
		updated := &models.UserProfile{ID: "user-1", FirstName: "Janet"}

		mockClient := new(MockUserClient)
		mockClient.On("UpdateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(updated, nil)

		mockSessions := new(MockSessionService)
		mockSessions.On("RefreshSession", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			return session.User.FirstName == "Janet"
		})).Return(nil)

		uc := NewUserUsecase(mockClient, mockSessions, new(MockStorage), testInternalConfig())

		_, err := uc.UpdateProfile(context.Background(), testSession(), &requests.UpdateProfile{FirstName: "Janet"})

		assert.NoError(t, err)
		mockSessions.AssertExpectations(t)
	})
}

func TestUploadProfileImage(t *testing.T) {
	t.Run("Oversized Image Is Rejected", func(t *testing.T) {
		mockStorage := new(MockStorage)
		uc := NewUserUsecase(new(MockUserClient), new(MockSessionService), mockStorage, testInternalConfig())

		fileHeader := &multipart.FileHeader{
			Filename: "me.jpg",
			Size:     3 * 1024 * 1024,
		}

		_, err := uc.UploadProfileImage(context.Background(), testSession(), bytes.NewReader(nil), fileHeader)

		assert.Error(t, err)
		mockStorage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Disallowed Extension Is Rejected", func(t *testing.T) {
		uc := NewUserUsecase(new(MockUserClient), new(MockSessionService), new(MockStorage), testInternalConfig())

		fileHeader := &multipart.FileHeader{
			Filename: "script.svg",
			Size:     1024,
		}

		_, err := uc.UploadProfileImage(context.Background(), testSession(), bytes.NewReader(nil), fileHeader)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Accepted Image Is Stored And Linked", func(t *testing.T) {
		updated := &models.UserProfile{ID: "user-1", ProfileImage: "http://localhost:9000/profile-pictures/profile-user-1.png"}

		mockStorage := new(MockStorage)
		mockStorage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, "profile-pictures", mock.Anything).
			Return("object-name", nil)

		mockClient := new(MockUserClient)
		mockClient.On("UploadProfileImage", mock.Anything, "upstream-token", mock.MatchedBy(func(request *requests.UpstreamProfileImage) bool {
			return request.ID == "user-1" && request.ImageURL != ""
		})).Return(updated, nil)

		mockSessions := new(MockSessionService)
		mockSessions.On("RefreshSession", mock.Anything, mock.Anything).Return(nil)

		uc := NewUserUsecase(mockClient, mockSessions, mockStorage, testInternalConfig())

		fileHeader := &multipart.FileHeader{
			Filename: "me.PNG",
			Size:     1024,
		}

		response, err := uc.UploadProfileImage(context.Background(), testSession(), bytes.NewReader([]byte("image bytes")), fileHeader)

		assert.NoError(t, err)
		assert.NotEmpty(t, response.User.ProfileImage)
		mockStorage.AssertExpectations(t)
		mockClient.AssertExpectations(t)
	})
}

func TestRemoveProfileImage(t *testing.T) {
	t.Run("Cleared Profile Is Returned And Session Refreshed", func(t *testing.T) {
		updated := &models.UserProfile{ID: "user-1", ProfileImage: ""}

		mockClient := new(MockUserClient)
		mockClient.On("RemoveProfileImage", mock.Anything, "upstream-token", "user-1").Return(updated, nil)

		mockSessions := new(MockSessionService)
		mockSessions.On("RefreshSession", mock.Anything, mock.Anything).Return(nil)

		uc := NewUserUsecase(mockClient, mockSessions, new(MockStorage), testInternalConfig())

		response, err := uc.RemoveProfileImage(context.Background(), testSession())

		assert.NoError(t, err)
		assert.Empty(t, response.User.ProfileImage)
		mockSessions.AssertExpectations(t)
	})
}
