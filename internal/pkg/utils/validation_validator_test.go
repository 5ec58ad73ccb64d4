package utils

import (
	"taskgo-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() *requests.Register {
	return &requests.Register{
		FirstName:         "Jane",
		LastName:          "Doe",
		Gender:            "female",
		DateOfBirth:       "24-03-1987",
		Email:             "jane@example.com",
		ConfirmEmail:      "jane@example.com",
		MobilePrefix:      "+353",
		MobileNumber:      "871234567",
		HomeAddress:       "1 Main Street, New Ross",
		NominatedPharmacy: "hanlysNewRos",
		Password:          "secret123",
		ConfirmPassword:   "secret123",
		PrivacyPolicy:     true,
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Register Request Passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validRegisterRequest()))
	})

	t.Run("Mismatched Emails Fail", func(t *testing.T) {
		request := validRegisterRequest()
		request.ConfirmEmail = "other@example.com"

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Unknown Pharmacy Fails", func(t *testing.T) {
		request := validRegisterRequest()
		request.NominatedPharmacy = "cornerShop"

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Unsupported Mobile Prefix Fails", func(t *testing.T) {
		request := validRegisterRequest()
		request.MobilePrefix = "+1"

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Date Of Birth Must Be Day Month Year", func(t *testing.T) {
		request := validRegisterRequest()
		request.DateOfBirth = "1987-03-24"

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Privacy Policy Must Be Accepted", func(t *testing.T) {
		request := validRegisterRequest()
		request.PrivacyPolicy = false

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Short Password Fails", func(t *testing.T) {
		request := validRegisterRequest()
		request.Password = "short"
		request.ConfirmPassword = "short"

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Collection Method Is Restricted", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.SetCollection{CollectionMethod: "myself"}))
		assert.NoError(t, ValidateStruct(&requests.SetCollection{CollectionMethod: "other"}))
		assert.Error(t, ValidateStruct(&requests.SetCollection{CollectionMethod: "courier"}))
	})
}
