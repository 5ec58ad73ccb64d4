package responses

import "taskgo-service/internal/app/models"

type MedicineList struct {
	Medicines []models.Medicine `json:"medicines"`
}

type UpstreamMedicines struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Medicines []models.Medicine `json:"medicines"`
}
