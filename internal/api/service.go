package api

import (
	"net/http"

	"property-management/internal/logger"
)

// IndexResponse describes the API and the collections it serves.
type IndexResponse struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Collections []string `json:"collections"`
	Docs        string   `json:"docs"`
}

// @Summary API landing document
// @Tags Service
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func (a *API) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, IndexResponse{
		Name:    "Property Management API",
		Version: "1.0",
		Collections: []string{
			"/property_managers",
			"/properties",
			"/tenancies",
			"/tenants",
			"/support_workers",
			"/audit_events",
		},
		Docs: "/swagger/index.html",
	})
}

// @Summary Liveness check
// @Tags Service
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /healthz [get]
func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
}

// @Summary Readiness check
// @Description Fails with 503 while the database is unreachable.
// @Tags Service
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 503 {object} ErrorResponse
// @Router /readyz [get]
func (a *API) Readyz(w http.ResponseWriter, r *http.Request) {
	if err := a.Store.Ping(r.Context()); err != nil {
		logger.FromContext(r.Context()).WithError(err).Warn("database not ready")
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "ready"})
}
