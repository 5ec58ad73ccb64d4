package orders

import (
	"context"
	"errors"
	"net/http"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/requests"
	"taskgo-service/internal/pkg/exceptions"
	"taskgo-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type OrderController struct {
	OrderUsecase OrderUsecase
	Log          *zap.Logger
}

func NewOrderController(orderUsecase OrderUsecase, logger *zap.Logger) *OrderController {
	return &OrderController{
		OrderUsecase: orderUsecase,
		Log:          logger,
	}
}

func (ctrl *OrderController) sessionID(r *http.Request) string {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}

func (ctrl *OrderController) session(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session
}

func (ctrl *OrderController) respondDraft(w http.ResponseWriter, response interface{}, err error) {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderDraftUpdateSuccess, response)
}

func (ctrl *OrderController) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.GetDraft(ctx, ctrl.sessionID(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderDraftGetSuccess, response)
}

func (ctrl *OrderController) AddMedicine(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AddMedicine)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeAddMedicineRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.AddMedicine(ctx, ctrl.sessionID(r), request)
	ctrl.respondDraft(w, response, err)
}

func (ctrl *OrderController) decodeMedicineRef(w http.ResponseWriter, r *http.Request) *requests.MedicineRef {
	request := new(requests.MedicineRef)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil
	}
	return request
}

func (ctrl *OrderController) IncrementMedicine(w http.ResponseWriter, r *http.Request) {
	request := ctrl.decodeMedicineRef(w, r)
	if request == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.IncrementMedicine(ctx, ctrl.sessionID(r), request)
	ctrl.respondDraft(w, response, err)
}

func (ctrl *OrderController) DecrementMedicine(w http.ResponseWriter, r *http.Request) {
	request := ctrl.decodeMedicineRef(w, r)
	if request == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.DecrementMedicine(ctx, ctrl.sessionID(r), request)
	ctrl.respondDraft(w, response, err)
}

func (ctrl *OrderController) RemoveMedicine(w http.ResponseWriter, r *http.Request) {
	request := ctrl.decodeMedicineRef(w, r)
	if request == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.RemoveMedicine(ctx, ctrl.sessionID(r), request)
	ctrl.respondDraft(w, response, err)
}

func (ctrl *OrderController) SetMedicineQuantity(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetMedicineQuantity)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.SetMedicineQuantity(ctx, ctrl.sessionID(r), request)
	ctrl.respondDraft(w, response, err)
}

func (ctrl *OrderController) SetCollection(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetCollection)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.SetCollection(ctx, ctrl.sessionID(r), request)
	ctrl.respondDraft(w, response, err)
}

func (ctrl *OrderController) SetReminder(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetReminder)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.SetReminder(ctx, ctrl.sessionID(r), request)
	ctrl.respondDraft(w, response, err)
}

func (ctrl *OrderController) NextStep(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.NextStep(ctx, ctrl.sessionID(r))
	ctrl.respondDraft(w, response, err)
}

func (ctrl *OrderController) PreviousStep(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.PreviousStep(ctx, ctrl.sessionID(r))
	ctrl.respondDraft(w, response, err)
}

func (ctrl *OrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	err := ctrl.OrderUsecase.SubmitOrder(ctx, ctrl.session(r))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OrderPlacedSuccess, nil)
}

func (ctrl *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.ListOrders(ctx, ctrl.session(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderListSuccess, response)
}

func (ctrl *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, constvars.URLParamOrderID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.GetOrder(ctx, ctrl.session(r), orderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderDetailSuccess, response)
}

func (ctrl *OrderController) Reorder(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Reorder)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	err = ctrl.OrderUsecase.Reorder(ctx, ctrl.session(r), request.OrderID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReorderSuccess, nil)
}
