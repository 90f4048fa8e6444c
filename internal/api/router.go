package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"property-management/internal/auth"
	"property-management/internal/logger"
	"property-management/internal/metrics"
)

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(logger.AddRequestID)
	r.Use(accessLog)
	r.Use(recoverer)
	if a.Cfg != nil && len(a.Cfg.Server.CORSOrigins) > 0 {
		r.Use(cors(a.Cfg.Server.CORSOrigins))
	}
	if a.Cfg != nil && a.Cfg.Server.RateLimit > 0 {
		r.Use(rateLimit(a.Cfg.Server.RateLimit, a.Cfg.Server.RateBurst))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "The requested URL was not found on the server.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "The method is not allowed for the requested URL.")
	})

	// Public
	r.Get("/", a.Index)
	r.Get("/healthz", a.Healthz)
	r.Get("/readyz", a.Readyz)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/property_managers", func(r chi.Router) {
		r.Get("/", a.ListPropertyManagers)
		r.Get("/properties", a.ListPropertyManagersWithProperties)
		r.Get("/{id}", a.GetPropertyManager)
		r.Group(func(r chi.Router) {
			a.protect(r)
			r.Post("/", a.CreatePropertyManager)
			r.Put("/{id}", a.UpdatePropertyManager)
			r.Delete("/{id}", a.DeletePropertyManager)
		})
	})

	r.Route("/properties", func(r chi.Router) {
		r.Get("/", a.ListProperties)
		r.Get("/property_managers", a.ListPropertiesWithManager)
		r.Get("/{id}", a.GetProperty)
		r.Group(func(r chi.Router) {
			a.protect(r)
			r.Post("/", a.CreateProperty)
			r.Put("/{id}", a.UpdateProperty)
			r.Delete("/{id}", a.DeleteProperty)
		})
	})

	r.Route("/tenancies", func(r chi.Router) {
		r.Get("/", a.ListTenancies)
		r.Get("/search", a.SearchTenancies)
		r.Get("/properties", a.ListTenanciesWithProperty)
		r.Get("/tenants", a.ListTenanciesWithTenants)
		r.Get("/{id}", a.GetTenancy)
		r.Group(func(r chi.Router) {
			a.protect(r)
			r.Post("/", a.CreateTenancy)
			r.Put("/{id}", a.UpdateTenancy)
			r.Delete("/{id}", a.DeleteTenancy)
			r.Post("/{id}/link_tenant/{tenant_id}", a.LinkTenancyTenant)
		})
	})

	r.Route("/tenants", func(r chi.Router) {
		r.Get("/", a.ListTenants)
		r.Get("/tenancies", a.ListTenantsWithTenancies)
		r.Get("/support_workers", a.ListTenantsWithSupportWorkers)
		r.Get("/{id}", a.GetTenant)
		r.Group(func(r chi.Router) {
			a.protect(r)
			r.Post("/", a.CreateTenant)
			r.Put("/{id}", a.UpdateTenant)
			r.Delete("/{id}", a.DeleteTenant)
			r.Post("/{id}/link_tenancy/{tenancy_id}", a.LinkTenantTenancy)
			r.Delete("/{id}/link_tenancy/{tenancy_id}", a.UnlinkTenantTenancy)
			r.Post("/{id}/link_support_worker/{worker_id}", a.LinkTenantSupportWorker)
			r.Delete("/{id}/link_support_worker/{worker_id}", a.UnlinkTenantSupportWorker)
		})
	})

	r.Route("/support_workers", func(r chi.Router) {
		r.Get("/", a.ListSupportWorkers)
		r.Get("/tenants", a.ListSupportWorkersWithTenants)
		r.Get("/{id}", a.GetSupportWorker)
		r.Group(func(r chi.Router) {
			a.protect(r)
			r.Post("/", a.CreateSupportWorker)
			r.Put("/{id}", a.UpdateSupportWorker)
			r.Delete("/{id}", a.DeleteSupportWorker)
			r.Post("/{id}/link_tenant/{tenant_id}", a.LinkSupportWorkerTenant)
		})
	})

	// Secured
	r.Group(func(r chi.Router) {
		a.protect(r)
		r.Get("/audit_events", a.ListAuditEvents)
		r.Group(func(r chi.Router) {
			a.requireRole(r, auth.RoleAdmin)
			r.Put("/audit_events/config/concurrency", a.UpdateAuditConcurrency)
		})
	})

	return r
}

// protect requires a bearer token on the group when auth is enabled.
func (a *API) protect(r chi.Router) {
	if a.Cfg != nil && a.Cfg.Auth.Enabled {
		r.Use(auth.JWTAuthMiddleware(unauthorized))
	}
}

// requireRole restricts the group to tokens carrying role when auth is enabled.
func (a *API) requireRole(r chi.Router, role string) {
	if a.Cfg != nil && a.Cfg.Auth.Enabled {
		r.Use(auth.RequireRole(role, unauthorized))
	}
}
