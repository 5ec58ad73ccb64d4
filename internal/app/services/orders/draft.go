package orders

import (
	"strconv"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/exceptions"
	"time"
)

func NewDraft() *models.OrderDraft {
	return &models.OrderDraft{
		Step:      models.DraftStepMedicines,
		Medicines: []models.MedicineLine{},
		UpdatedAt: time.Now(),
	}
}

// lineMatches pairs a draft line with a medicine reference. Keyed medicines
// match on key, keyless ones fall back to the name.
func lineMatches(line models.MedicineLine, ref *requests.MedicineRef) bool {
	if ref.Key != nil {
		return line.Key != nil && *line.Key == *ref.Key
	}
	return line.Key == nil && line.Name == ref.Name
}

// AddMedicine appends a new line with quantity one. Adding a medicine that is
// already on the list creates a second line rather than bumping the first.
func AddMedicine(draft *models.OrderDraft, key *string, name string) {
	draft.Medicines = append(draft.Medicines, models.MedicineLine{
		Key:      key,
		Name:     name,
		Quantity: 1,
	})
	draft.UpdatedAt = time.Now()
}

// IncrementMedicine raises the quantity of every line matching ref by one.
func IncrementMedicine(draft *models.OrderDraft, ref *requests.MedicineRef) error {
	matched := false
	for i := range draft.Medicines {
		if lineMatches(draft.Medicines[i], ref) {
			draft.Medicines[i].Quantity++
			matched = true
		}
	}
	if !matched {
		return exceptions.ErrDraftNoSuchMedicine(nil)
	}
	draft.UpdatedAt = time.Now()
	return nil
}

// DecrementMedicine lowers matching quantities by one, never below one.
func DecrementMedicine(draft *models.OrderDraft, ref *requests.MedicineRef) error {
	matched := false
	for i := range draft.Medicines {
		if lineMatches(draft.Medicines[i], ref) {
			if draft.Medicines[i].Quantity > 1 {
				draft.Medicines[i].Quantity--
			}
			matched = true
		}
	}
	if !matched {
		return exceptions.ErrDraftNoSuchMedicine(nil)
	}
	draft.UpdatedAt = time.Now()
	return nil
}

// RemoveMedicine drops every line matching ref.
func RemoveMedicine(draft *models.OrderDraft, ref *requests.MedicineRef) error {
	kept := draft.Medicines[:0]
	matched := false
	for _, line := range draft.Medicines {
		if lineMatches(line, ref) {
			matched = true
			continue
		}
		kept = append(kept, line)
	}
	if !matched {
		return exceptions.ErrDraftNoSuchMedicine(nil)
	}
	draft.Medicines = kept
	draft.UpdatedAt = time.Now()
	return nil
}

// SetMedicineQuantity applies a free text quantity to matching lines. Input
// that is not a positive whole number leaves the stored quantity as it was,
// mirroring how the inline editor reverts invalid entries.
func SetMedicineQuantity(draft *models.OrderDraft, ref *requests.MedicineRef, quantityText string) error {
	quantity, err := strconv.Atoi(quantityText)
	if err != nil || quantity < 1 {
		return nil
	}

	matched := false
	for i := range draft.Medicines {
		if lineMatches(draft.Medicines[i], ref) {
			draft.Medicines[i].Quantity = quantity
			matched = true
		}
	}
	if !matched {
		return exceptions.ErrDraftNoSuchMedicine(nil)
	}
	draft.UpdatedAt = time.Now()
	return nil
}

func SetCollection(draft *models.OrderDraft, method, additionalInfo string) {
	draft.CollectionMethod = method
	draft.AdditionalInfo = additionalInfo
	draft.UpdatedAt = time.Now()
}

func SetReminder(draft *models.OrderDraft, reminder bool, reminderDate string) {
	draft.Reminder = reminder
	if !reminder {
		reminderDate = ""
	}
	draft.ReminderDate = reminderDate
	draft.UpdatedAt = time.Now()
}

// Advance moves the draft to the next wizard step after checking the current
// step is complete.
func Advance(draft *models.OrderDraft) error {
	switch draft.Step {
	case models.DraftStepMedicines:
		if len(draft.Medicines) == 0 {
			return exceptions.ErrDraftNoMedicines(nil)
		}
	case models.DraftStepCollection:
		if draft.CollectionMethod == "" {
			return exceptions.ErrDraftStepValidation(nil, constvars.ErrClientCollectionMethodRequired)
		}
	case models.DraftStepReminder:
		if draft.Reminder {
			if _, err := time.Parse(constvars.DateLayoutReminder, draft.ReminderDate); err != nil {
				return exceptions.ErrDraftStepValidation(err, constvars.ErrClientReminderDateRequired)
			}
		}
	case models.DraftStepReview:
		return exceptions.ErrDraftStepValidation(nil, constvars.ErrClientDraftCannotAdvance)
	}

	draft.Step++
	draft.UpdatedAt = time.Now()
	return nil
}

// Back returns to the previous step. Going back from the first step is a
// no-op rather than an error.
func Back(draft *models.OrderDraft) {
	if draft.Step > models.DraftStepMedicines {
		draft.Step--
		draft.UpdatedAt = time.Now()
	}
}
