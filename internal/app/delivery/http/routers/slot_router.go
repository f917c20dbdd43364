package routers

import (
	"beauty-clinic-service/internal/app/delivery/http/controllers"
	"beauty-clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, slotController *controllers.SlotController) {
	router.Use(middlewares.Authenticate, middlewares.RequireAdmin)
	router.Get("/", slotController.FindWindow)
	router.Put("/", slotController.UpdateWindow)
}
