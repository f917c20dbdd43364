package routers

import (
	"beauty-clinic-service/internal/app/delivery/http/controllers"
	"beauty-clinic-service/internal/app/delivery/http/middlewares"
	"beauty-clinic-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	slotController *controllers.SlotController,
) {
	router.Get("/available-slots", slotController.FindAvailable)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", appointmentController.FindAll)
	router.With(middlewares.Authenticate).Get(fmt.Sprintf("/user/{%s}", constvars.URLParamUserID), appointmentController.FindByUserID)
	router.With(middlewares.Authenticate).Post("/", appointmentController.Create)
	router.With(middlewares.Authenticate).Put(fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID), appointmentController.Update)
	router.With(middlewares.Authenticate).Delete(fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID), appointmentController.Delete)
}
