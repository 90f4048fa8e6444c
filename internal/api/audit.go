package api

import (
	"fmt"
	"net/http"
	"strconv"

	"property-management/internal/manager"
	"property-management/internal/model"
	"property-management/internal/schema"
)

const (
	defaultAuditLimit = 20
	maxAuditLimit     = 100
)

// WorkerScaler resizes the pool consuming audit events. *manager.AuditManager
// implements it alongside EventPublisher.
type WorkerScaler interface {
	SetWorkerCount(n int) (int, error)
}

// Concurrency is the audit consumer's worker count.
type Concurrency struct {
	Workers int `json:"workers"`
}

// AuditPage is one page of the change log.
type AuditPage struct {
	Data       []model.Event `json:"data"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// @Summary List recorded change events
// @Tags Audit
// @Security ApiKeyAuth
// @Produce json
// @Param cursor query string false "Cursor returned by the previous page"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} AuditPage
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /audit_events [get]
func (a *API) ListAuditEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := defaultAuditLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxAuditLimit {
			handleError(w, r, &schema.ValidationError{Problems: []string{
				fmt.Sprintf("limit must be between 1 and %d", maxAuditLimit),
			}}, "")
			return
		}
		limit = n
	}

	events, next, err := a.Store.ListAuditEvents(r.Context(), q.Get("cursor"), limit)
	if err != nil {
		handleError(w, r, err, "")
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, AuditPage{Data: events, NextCursor: next})
}

// @Summary Resize the audit consumer worker pool
// @Tags Audit
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body Concurrency true "New worker count (1-64)"
// @Success 200 {object} Concurrency
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /audit_events/config/concurrency [put]
func (a *API) UpdateAuditConcurrency(w http.ResponseWriter, r *http.Request) {
	var in Concurrency
	if err := a.decodeBody(r, schema.Concurrency, &in, false); err != nil {
		handleError(w, r, err, "")
		return
	}

	scaler, ok := a.Events.(WorkerScaler)
	if !ok {
		handleError(w, r, manager.ErrNotRunning, "")
		return
	}
	n, err := scaler.SetWorkerCount(in.Workers)
	if err != nil {
		handleError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, Concurrency{Workers: n})
}
