package routers

import (
	"fmt"
	"taskgo-service/internal/app/delivery/http/middlewares"
	"taskgo-service/internal/app/services/orders"
	"taskgo-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, middlewares *middlewares.Middlewares, orderController *orders.OrderController) {
	router.With(middlewares.Authenticate).Get("/", orderController.ListOrders)
	router.With(middlewares.Authenticate).Post("/", orderController.SubmitOrder)
	router.With(middlewares.Authenticate).Post("/reorder", orderController.Reorder)

	router.Route("/draft", func(r chi.Router) {
		r.With(middlewares.Authenticate).Get("/", orderController.GetDraft)
		r.With(middlewares.Authenticate).Post("/next", orderController.NextStep)
		r.With(middlewares.Authenticate).Post("/back", orderController.PreviousStep)
		r.With(middlewares.Authenticate).Put("/collection", orderController.SetCollection)
		r.With(middlewares.Authenticate).Put("/reminder", orderController.SetReminder)
		r.With(middlewares.Authenticate).Post("/medicines", orderController.AddMedicine)
		r.With(middlewares.Authenticate).Post("/medicines/increment", orderController.IncrementMedicine)
		r.With(middlewares.Authenticate).Post("/medicines/decrement", orderController.DecrementMedicine)
		r.With(middlewares.Authenticate).Put("/medicines/quantity", orderController.SetMedicineQuantity)
		r.With(middlewares.Authenticate).Post("/medicines/remove", orderController.RemoveMedicine)
	})

	router.With(middlewares.Authenticate).Get(fmt.Sprintf("/{%s}", constvars.URLParamOrderID), orderController.GetOrder)
}
