package routers

import (
	"beauty-clinic-service/internal/app/config"
	"beauty-clinic-service/internal/app/delivery/http/controllers"
	"beauty-clinic-service/internal/app/delivery/http/middlewares"
	"beauty-clinic-service/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	slotController *controllers.SlotController,
	appointmentController *controllers.AppointmentController,
	serviceController *controllers.ServiceController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	if internalConfig.App.MaxRequests > 0 {
		router.Use(middlewares.RateLimiter())
	}
	router.Use(middlewares.BodyLimit)

	router.NotFound(middlewares.NotFound)
	router.MethodNotAllowed(middlewares.MethodNotAllowed)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Get("/health", healthController.Check)

		r.Route("/slots", func(r chi.Router) {
			attachSlotRoutes(r, middlewares, slotController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController, slotController)
		})

		r.Route("/services", func(r chi.Router) {
			attachServiceRoutes(r, middlewares, serviceController)
		})
	})
}
