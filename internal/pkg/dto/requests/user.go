package requests

// UpdateProfile carries the account settings form. Password is only forwarded
// to the pharmacy backend when both password fields are present and equal.
type UpdateProfile struct {
	FirstName         string `json:"first_name" validate:"required"`
	LastName          string `json:"last_name" validate:"required"`
	Gender            string `json:"gender" validate:"required,oneof=male female other"`
	DateOfBirth       string `json:"dob" validate:"required,dob"`
	Email             string `json:"email" validate:"required,email"`
	MobilePrefix      string `json:"mobile_prefix" validate:"required,mobile_prefix"`
	MobileNumber      string `json:"mobile_number" validate:"required,numeric"`
	HomeAddress       string `json:"home_address" validate:"required"`
	NominatedPharmacy string `json:"nominated_pharmacy" validate:"required,pharmacy"`
	UpdatesOffers     bool   `json:"updates_offers"`
	Password          string `json:"password" validate:"omitempty,min=8"`
	ConfirmPassword   string `json:"confirm_password" validate:"omitempty,min=8"`
}
