package responses

import "taskgo-service/internal/app/models"

type OrderDraft struct {
	Draft models.OrderDraft `json:"draft"`
}

type OrderList struct {
	Orders []models.Order `json:"orders"`
}

type OrderDetail struct {
	Order models.Order `json:"order"`
}

type UpstreamOrders struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Orders  []models.Order `json:"orders"`
}

type UpstreamOrder struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Order   models.Order `json:"order"`
}

type UpstreamGeneric struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
