package utils

import (
	"regexp"
	"taskgo-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("collection_method", validateCollectionMethod)
	validate.RegisterValidation("pharmacy", validateNominatedPharmacy)
	validate.RegisterValidation("dob", validateDateOfBirth)
	validate.RegisterValidation("mobile_prefix", validateMobilePrefix)
	validate.RegisterValidation("accepted", validateAccepted)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCollectionMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.CollectionMethodMyself || value == constvars.CollectionMethodOther
}

func validateNominatedPharmacy(fl validator.FieldLevel) bool {
	_, ok := constvars.NominatedPharmacies[fl.Field().String()]
	return ok
}

func validateDateOfBirth(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexDateOfBirth)
	return re.MatchString(fl.Field().String())
}

func validateMobilePrefix(fl validator.FieldLevel) bool {
	return constvars.MobileNumberPrefixes[fl.Field().String()]
}

func validateAccepted(fl validator.FieldLevel) bool {
	return fl.Field().Bool()
}
