package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/violintec/common-login/internal/access"
	"github.com/violintec/common-login/internal/auth"
	"github.com/violintec/common-login/internal/project"
	"github.com/violintec/common-login/internal/transport/middleware"
	"github.com/violintec/common-login/internal/transport/swagger"
	"github.com/violintec/common-login/internal/unit"
	"github.com/violintec/common-login/internal/user"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	User    *user.Handler
	Unit    *unit.Handler
	Access  *access.Handler
	Project *project.Handler
	Auth    *auth.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec and swagger UI live outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// user directory
		r.Route("/users", func(ur chi.Router) {
			ur.Get("/", h.User.ListUsers)
			ur.Post("/reconcile", h.User.ReconcileLifecycle)
			ur.Route("/{id}", func(sr chi.Router) {
				sr.Get("/", h.User.GetUser)
				sr.Put("/", h.User.UpdateUser)
				sr.Get("/username", h.User.GetUsername)
				sr.Get("/fullname", h.User.GetFullName)
				sr.Get("/department", h.User.GetDepartment)
				sr.Get("/leftdate", h.User.GetLeftDate)
			})
		})

		// unit membership and catalog
		r.Route("/employees/{empID}/units", func(er chi.Router) {
			er.Get("/", h.Unit.ListUnits)
			er.Put("/", h.Unit.AddUnits)
			er.Put("/remove", h.Unit.RemoveUnits)
		})
		r.Get("/units/{unitCode}/description", h.Unit.GetDescription)

		// triple-keyed project grants
		r.Get("/project-access/{empID}/{project}", h.Access.ListGrants)
		r.Get("/project-allowed/{empID}/{project}", h.Access.IsAllowed)
		r.Post("/project-access", h.Access.Grant)

		// pair-keyed access records
		r.Route("/access", func(ar chi.Router) {
			ar.Post("/", h.Access.SetAccess)
			ar.Get("/{employeeID}/{projectCode}", h.Access.GetAccess)
			ar.Delete("/{employeeID}/{projectCode}", h.Access.Revoke)
		})

		r.Get("/projects", h.Project.ListProjects)

		// identity
		r.Post("/login", h.Auth.Login)
		r.Post("/signup", h.Auth.Signup)
	})
}
