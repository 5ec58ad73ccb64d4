package utils

import (
	"strings"
	"taskgo-service/internal/pkg/dto/requests"
)

func SanitizeRegisterRequest(input *requests.Register) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.ConfirmEmail = strings.TrimSpace(strings.ToLower(input.ConfirmEmail))
	input.MobilePrefix = strings.TrimSpace(input.MobilePrefix)
	input.MobileNumber = strings.TrimSpace(input.MobileNumber)
	input.HomeAddress = strings.TrimSpace(input.HomeAddress)
	input.NominatedPharmacy = strings.TrimSpace(input.NominatedPharmacy)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.MobilePrefix = strings.TrimSpace(input.MobilePrefix)
	input.MobileNumber = strings.TrimSpace(input.MobileNumber)
	input.HomeAddress = strings.TrimSpace(input.HomeAddress)
	input.NominatedPharmacy = strings.TrimSpace(input.NominatedPharmacy)
}

func SanitizeAddMedicineRequest(input *requests.AddMedicine) {
	input.Name = strings.TrimSpace(input.Name)
}
