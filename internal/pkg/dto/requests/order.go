package requests

// MedicineRef identifies draft lines to operate on. Lines match on key when
// both keys are set, otherwise on name.
type MedicineRef struct {
	Key  *string `json:"key"`
	Name string  `json:"name" validate:"required"`
}

type AddMedicine struct {
	Key  *string `json:"key"`
	Name string  `json:"name" validate:"required"`
}

type SetMedicineQuantity struct {
	MedicineRef
	// Quantity arrives as free text from the inline editor. Non numeric or
	// non positive input leaves the stored quantity untouched.
	Quantity string `json:"quantity" validate:"required"`
}

type SetCollection struct {
	CollectionMethod string `json:"collection_method" validate:"required,collection_method"`
	AdditionalInfo   string `json:"additional_info"`
}

type SetReminder struct {
	Reminder     bool   `json:"reminder"`
	ReminderDate string `json:"reminder_date"`
}

type Reorder struct {
	OrderID string `json:"orderId" validate:"required"`
}
