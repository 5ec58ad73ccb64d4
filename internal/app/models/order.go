package models

import "time"

// Order wizard steps. The draft advances one step at a time and an order can
// only be placed from the review step.
const (
	DraftStepMedicines = iota
	DraftStepCollection
	DraftStepReminder
	DraftStepReview

	DraftStepCount = 4
)

// MedicineLine is one row in the order draft. Duplicate lines for the same
// medicine are allowed; quantity operations apply to every matching line.
type MedicineLine struct {
	Key      *string `json:"key"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
}

// OrderDraft is the in progress order for one session, stored in Redis with
// the same TTL as the session itself.
type OrderDraft struct {
	Step             int            `json:"step"`
	Medicines        []MedicineLine `json:"medicines"`
	AdditionalInfo   string         `json:"additional_info"`
	CollectionMethod string         `json:"collection_method"`
	Reminder         bool           `json:"reminder"`
	ReminderDate     string         `json:"reminder_date"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Order is a placed order as returned by the pharmacy backend.
type Order struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	Status           string         `json:"status"`
	Medicines        []MedicineLine `json:"medicines"`
	AdditionalInfo   string         `json:"additionalInfo"`
	CollectionMethod string         `json:"collectionMethod"`
	Reminder         bool           `json:"reminder"`
	ReminderDate     string         `json:"reminderDate"`
	Pharmacy         string         `json:"pharmacy"`
	CreatedAt        string         `json:"created_at"`
}
