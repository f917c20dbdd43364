package routers

import (
	"beauty-clinic-service/internal/app/delivery/http/controllers"
	"beauty-clinic-service/internal/app/delivery/http/middlewares"
	"beauty-clinic-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceController *controllers.ServiceController) {
	serviceIDPath := fmt.Sprintf("/{%s}", constvars.URLParamServiceID)

	router.Get("/", serviceController.FindAll)
	router.Get(serviceIDPath, serviceController.FindByID)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireAdmin)
		r.Post("/", serviceController.Create)
		r.Put(serviceIDPath, serviceController.Update)
		r.Delete(serviceIDPath, serviceController.Delete)
	})
}
