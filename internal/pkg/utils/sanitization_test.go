package utils

import (
	"taskgo-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.Register{
			Email:        "  JOHN@EXAMPLE.COM  ",
			ConfirmEmail: "  JOHN@EXAMPLE.COM  ",
		}

		SanitizeRegisterRequest(request)

		assert.Equal(t, "john@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "john@example.com", request.ConfirmEmail, "confirm email should be lowercase and trimmed")
	})

	t.Run("Name And Address Sanitization", func(t *testing.T) {
		request := &requests.Register{
			FirstName:   "  John  ",
			LastName:    "  Murphy  ",
			HomeAddress: "  12 Main Street, New Ross  ",
		}

		SanitizeRegisterRequest(request)

		assert.Equal(t, "John", request.FirstName)
		assert.Equal(t, "Murphy", request.LastName)
		assert.Equal(t, "12 Main Street, New Ross", request.HomeAddress)
	})

	t.Run("Gender Lowercased", func(t *testing.T) {
		request := &requests.Register{Gender: " Female "}

		SanitizeRegisterRequest(request)

		assert.Equal(t, "female", request.Gender)
	})

	t.Run("Mobile Fields Trimmed", func(t *testing.T) {
		request := &requests.Register{
			MobilePrefix: " +353 ",
			MobileNumber: " 871234567 ",
		}

		SanitizeRegisterRequest(request)

		assert.Equal(t, "+353", request.MobilePrefix)
		assert.Equal(t, "871234567", request.MobileNumber)
	})
}

func TestSanitizeLoginRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.Login{
			Email:    "  USER@DOMAIN.ORG  ",
			Password: "secret-password",
		}

		SanitizeLoginRequest(request)

		assert.Equal(t, "user@domain.org", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "secret-password", request.Password, "password should not be altered")
	})
}

func TestSanitizeUpdateProfileRequest(t *testing.T) {
	t.Run("All String Fields Trimmed", func(t *testing.T) {
		request := &requests.UpdateProfile{
			FirstName:         "  Mary  ",
			LastName:          "  Kelly  ",
			Gender:            " FEMALE ",
			DateOfBirth:       " 01-02-1990 ",
			Email:             "  MARY@EXAMPLE.COM  ",
			MobilePrefix:      " +44 ",
			MobileNumber:      " 7712345678 ",
			HomeAddress:       "  5 Church Lane  ",
			NominatedPharmacy: " kellysEnniscorthy ",
		}

		SanitizeUpdateProfileRequest(request)

		assert.Equal(t, "Mary", request.FirstName)
		assert.Equal(t, "Kelly", request.LastName)
		assert.Equal(t, "female", request.Gender)
		assert.Equal(t, "01-02-1990", request.DateOfBirth)
		assert.Equal(t, "mary@example.com", request.Email)
		assert.Equal(t, "+44", request.MobilePrefix)
		assert.Equal(t, "7712345678", request.MobileNumber)
		assert.Equal(t, "5 Church Lane", request.HomeAddress)
		assert.Equal(t, "kellysEnniscorthy", request.NominatedPharmacy)
	})
}

func TestSanitizeAddMedicineRequest(t *testing.T) {
	t.Run("Name Trimmed", func(t *testing.T) {
		request := &requests.AddMedicine{Name: "  Paracetamol 500mg  "}

		SanitizeAddMedicineRequest(request)

		assert.Equal(t, "Paracetamol 500mg", request.Name)
	})
}
