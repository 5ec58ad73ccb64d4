package medicines

import (
	"context"
	"encoding/json"
	"taskgo-service/internal/app/config"
	"taskgo-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockMedicineClient struct {
	mock.Mock
}

func (m *MockMedicineClient) GetMedicines(ctx context.Context, upstreamToken string) ([]models.Medicine, error) {
	args := m.Called(ctx, upstreamToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Medicine), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int64, error) {
	args := m.Called(ctx, key, exp)
	return args.Get(0).(int64), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			MedicineCacheTTLInMinutes: 30,
		},
	}
}

func testSession() *models.Session {
	return &models.Session{
		ID:            "session-1",
		UpstreamToken: "upstream-token",
	}
}

func testCatalog() []models.Medicine {
	return []models.Medicine{
		{Key: strPtr("para-500"), Name: "Paracetamol 500mg"},
		{Key: strPtr("ibu-200"), Name: "Ibuprofen 200mg"},
		{Key: strPtr("cet-10"), Name: "Cetirizine 10mg"},
	}
}

func TestListMedicines(t *testing.T) {
	t.Run("Cache Hit Skips The Backend", func(t *testing.T) {
		cached, err := json.Marshal(testCatalog())
		assert.NoError(t, err)

		mockRedis := new(MockRedisRepository)
		mockRedis.On("Get", mock.Anything, "catalog:medicines").Return(string(cached), nil)

		mockClient := new(MockMedicineClient)
		uc := NewMedicineUsecase(mockClient, mockRedis, testInternalConfig(), zap.NewNop())

		response, err := uc.ListMedicines(context.Background(), testSession(), "")

		assert.NoError(t, err)
		assert.Len(t, response.Medicines, 3)
		mockClient.AssertNotCalled(t, "GetMedicines", mock.Anything, mock.Anything)
	})

	t.Run("Cache Miss Fetches And Caches", func(t *testing.T) {
		mockRedis := new(MockRedisRepository)
		mockRedis.On("Get", mock.Anything, "catalog:medicines").Return("", nil)
		mockRedis.On("Set", mock.Anything, "catalog:medicines", mock.Anything, 30*time.Minute).Return(nil)

		mockClient := new(MockMedicineClient)
		mockClient.On("GetMedicines", mock.Anything, "upstream-token").Return(testCatalog(), nil)

		uc := NewMedicineUsecase(mockClient, mockRedis, testInternalConfig(), zap.NewNop())

		response, err := uc.ListMedicines(context.Background(), testSession(), "")

		assert.NoError(t, err)
		assert.Len(t, response.Medicines, 3)
		mockRedis.AssertExpectations(t)
	})

	t.Run("Cache Write Failure Is Not Fatal", func(t *testing.T) {
		mockRedis := new(MockRedisRepository)
		mockRedis.On("Get", mock.Anything, "catalog:medicines").Return("", nil)
		mockRedis.On("Set", mock.Anything, "catalog:medicines", mock.Anything, mock.Anything).Return(assert.AnError)

		mockClient := new(MockMedicineClient)
		mockClient.On("GetMedicines", mock.Anything, "upstream-token").Return(testCatalog(), nil)

		uc := NewMedicineUsecase(mockClient, mockRedis, testInternalConfig(), zap.NewNop())

		response, err := uc.ListMedicines(context.Background(), testSession(), "")

		assert.NoError(t, err)
		assert.Len(t, response.Medicines, 3)
	})

	t.Run("Corrupt Cache Falls Back To The Backend", func(t *testing.T) {
		mockRedis := new(MockRedisRepository)
		mockRedis.On("Get", mock.Anything, "catalog:medicines").Return("{not json", nil)
		mockRedis.On("Set", mock.Anything, "catalog:medicines", mock.Anything, mock.Anything).Return(nil)

		mockClient := new(MockMedicineClient)
		mockClient.On("GetMedicines", mock.Anything, "upstream-token").Return(testCatalog(), nil)

		uc := NewMedicineUsecase(mockClient, mockRedis, testInternalConfig(), zap.NewNop())

		response, err := uc.ListMedicines(context.Background(), testSession(), "")

		assert.NoError(t, err)
		assert.Len(t, response.Medicines, 3)
		mockClient.AssertExpectations(t)
	})

	t.Run("Search Filters Case Insensitively", func(t *testing.T) {
		cached, err := json.Marshal(testCatalog())
		assert.NoError(t, err)

		mockRedis := new(MockRedisRepository)
		mockRedis.On("Get", mock.Anything, "catalog:medicines").Return(string(cached), nil)

		uc := NewMedicineUsecase(new(MockMedicineClient), mockRedis, testInternalConfig(), zap.NewNop())

		response, err := uc.ListMedicines(context.Background(), testSession(), "PARACET")

		assert.NoError(t, err)
		assert.Len(t, response.Medicines, 1)
		assert.Equal(t, "Paracetamol 500mg", response.Medicines[0].Name)
	})

	t.Run("No Match Returns Empty List", func(t *testing.T) {
		cached, err := json.Marshal(testCatalog())
		assert.NoError(t, err)

		mockRedis := new(MockRedisRepository)
		mockRedis.On("Get", mock.Anything, "catalog:medicines").Return(string(cached), nil)

		uc := NewMedicineUsecase(new(MockMedicineClient), mockRedis, testInternalConfig(), zap.NewNop())

		response, err := uc.ListMedicines(context.Background(), testSession(), "aspirin")

		assert.NoError(t, err)
		assert.Empty(t, response.Medicines)
	})
}
