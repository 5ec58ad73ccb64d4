package medicines

import (
	"context"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/dto/responses"
)

type MedicineUsecase interface {
	ListMedicines(ctx context.Context, session *models.Session, search string) (*responses.MedicineList, error)
}
