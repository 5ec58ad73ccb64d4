package requests

type Register struct {
	FirstName         string `json:"first_name" validate:"required"`
	LastName          string `json:"last_name" validate:"required"`
	Gender            string `json:"gender" validate:"required,oneof=male female other"`
	DateOfBirth       string `json:"dob" validate:"required,dob"`
	Email             string `json:"email" validate:"required,email"`
	ConfirmEmail      string `json:"confirm_email" validate:"required,eqfield=Email"`
	MobilePrefix      string `json:"mobile_prefix" validate:"required,mobile_prefix"`
	MobileNumber      string `json:"mobile_number" validate:"required,numeric"`
	HomeAddress       string `json:"home_address" validate:"required"`
	NominatedPharmacy string `json:"nominated_pharmacy" validate:"required,pharmacy"`
	Password          string `json:"password" validate:"required,min=8"`
	ConfirmPassword   string `json:"confirm_password" validate:"required,eqfield=Password"`
	PrivacyPolicy     bool   `json:"privacy_policy" validate:"accepted"`
	UpdatesOffers     bool   `json:"updates_offers"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	Token           string `json:"token"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}
