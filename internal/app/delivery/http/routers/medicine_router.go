package routers

import (
	"taskgo-service/internal/app/delivery/http/middlewares"
	"taskgo-service/internal/app/services/medicines"

	"github.com/go-chi/chi/v5"
)

func attachMedicineRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicineController *medicines.MedicineController) {
	router.With(middlewares.Authenticate).Get("/", medicineController.ListMedicines)
}
