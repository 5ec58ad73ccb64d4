package requests

import "taskgo-service/internal/app/models"

// Payloads sent to the pharmacy backend. Field names follow its wire format.

type UpstreamSignup struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Gender            string `json:"gender"`
	DateOfBirth       string `json:"dob"`
	Email             string `json:"email"`
	MobileNumber      string `json:"mobile_number"`
	HomeAddress       string `json:"home_address"`
	NominatedPharmacy string `json:"nominated_pharmacy"`
	Password          string `json:"password"`
	PrivacyPolicy     bool   `json:"privacy_policy"`
	UpdatesOffers     bool   `json:"updates_offers"`
}

type UpstreamUpdateUser struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Gender            string `json:"gender"`
	DateOfBirth       string `json:"dob"`
	Email             string `json:"email"`
	MobileNumber      string `json:"mobile_number"`
	HomeAddress       string `json:"home_address"`
	NominatedPharmacy string `json:"nominated_pharmacy"`
	UpdatesOffers     bool   `json:"updates_offers"`
	Password          string `json:"password,omitempty"`
}

type UpstreamProfileImage struct {
	ImageURL string `json:"img_url"`
	ID       string `json:"id"`
}

type UpstreamCreateOrder struct {
	Medicines        []models.MedicineLine `json:"medicines"`
	AdditionalInfo   string                `json:"additionalInfo"`
	CollectionMethod string                `json:"collectionMethod"`
	Reminder         bool                  `json:"reminder"`
	ReminderDate     string                `json:"reminderDate"`
	UserID           string                `json:"user_id"`
	Pharmacy         string                `json:"pharmacy"`
}

type UpstreamReorder struct {
	OrderID string `json:"orderId"`
}

type UpstreamResetPassword struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
