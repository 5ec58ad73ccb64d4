package models

// UserProfile mirrors the account record held by the pharmacy backend.
type UserProfile struct {
	ID                string `json:"id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Gender            string `json:"gender"`
	DateOfBirth       string `json:"dob"`
	Email             string `json:"email"`
	MobileNumber      string `json:"mobile_number"`
	HomeAddress       string `json:"home_address"`
	NominatedPharmacy string `json:"nominated_pharmacy"`
	ProfileImage      string `json:"profile_image"`
	UpdatesOffers     bool   `json:"updates_offers"`
}
