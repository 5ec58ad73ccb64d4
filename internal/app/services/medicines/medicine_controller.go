package medicines

import (
	"context"
	"errors"
	"net/http"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/exceptions"
	"taskgo-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type MedicineController struct {
	MedicineUsecase MedicineUsecase
	Log             *zap.Logger
}

func NewMedicineController(medicineUsecase MedicineUsecase, logger *zap.Logger) *MedicineController {
	return &MedicineController{
		MedicineUsecase: medicineUsecase,
		Log:             logger,
	}
}

func (ctrl *MedicineController) ListMedicines(w http.ResponseWriter, r *http.Request) {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	search := r.URL.Query().Get(constvars.URLQueryParamSearch)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineUsecase.ListMedicines(ctx, session, search)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicineListSuccess, response)
}
