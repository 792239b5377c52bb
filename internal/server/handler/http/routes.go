package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/atinyakov/staffdeck/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the employee API.
//
// Routes:
//
//	GET  /employees       → EmployeeHandler.List
//	GET  /employees/{id}  → EmployeeHandler.Get
//	POST /employees       → EmployeeHandler.Create
func NewRouter(employeeHandler *EmployeeHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.List)
		r.Get("/{id}", employeeHandler.Get)

		// Only allow JSON bodies on the mutation endpoint
		r.With(chiMiddleware.AllowContentType("application/json")).
			Post("/", employeeHandler.Create)
	})

	return r
}
