package api

import (
	"fmt"
	"net/http"

	"property-management/internal/model"
	"property-management/internal/schema"
)

const (
	workerMissing       notFound = "Support Worker does not exist"
	workerDeleteMissing notFound = "Support Worker not found"
)

// @Summary List support workers
// @Tags SupportWorkers
// @Produce json
// @Success 200 {array} model.SupportWorker
// @Router /support_workers [get]
func (a *API) ListSupportWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := a.Store.ListSupportWorkers(r.Context())
	if err != nil {
		handleError(w, r, err, workerMissing)
		return
	}
	writeJSON(w, http.StatusOK, workers)
}

// @Summary Get a support worker
// @Tags SupportWorkers
// @Produce json
// @Param id path int true "Support worker ID"
// @Success 200 {object} model.SupportWorker
// @Failure 404 {object} ErrorResponse
// @Router /support_workers/{id} [get]
func (a *API) GetSupportWorker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, workerMissing)
		return
	}
	sw, err := a.Store.GetSupportWorker(r.Context(), id)
	if err != nil {
		handleError(w, r, err, workerMissing)
		return
	}
	writeJSON(w, http.StatusOK, sw)
}

// @Summary List support workers with their tenants
// @Tags SupportWorkers
// @Produce json
// @Success 200 {array} model.SupportWorkerWithTenants
// @Router /support_workers/tenants [get]
func (a *API) ListSupportWorkersWithTenants(w http.ResponseWriter, r *http.Request) {
	workers, err := a.Store.ListSupportWorkersWithTenants(r.Context())
	if err != nil {
		handleError(w, r, err, workerMissing)
		return
	}
	writeJSON(w, http.StatusOK, workers)
}

// @Summary Create a support worker
// @Tags SupportWorkers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body model.SupportWorkerInput true "Support worker"
// @Success 201 {object} model.SupportWorker
// @Failure 400 {object} ErrorResponse
// @Router /support_workers [post]
func (a *API) CreateSupportWorker(w http.ResponseWriter, r *http.Request) {
	var in model.SupportWorkerInput
	if err := a.decodeBody(r, schema.SupportWorkerCreate, &in, false); err != nil {
		handleError(w, r, err, workerMissing)
		return
	}
	sw, err := a.Store.CreateSupportWorker(r.Context(), in)
	if err != nil {
		handleError(w, r, err, workerMissing)
		return
	}
	a.publish(r.Context(), "support_worker", sw.ID, model.ActionCreated, sw)
	writeJSON(w, http.StatusCreated, sw)
}

// @Summary Update a support worker
// @Tags SupportWorkers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Support worker ID"
// @Param body body model.SupportWorkerInput true "Fields to change"
// @Success 200 {object} model.SupportWorker
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /support_workers/{id} [put]
func (a *API) UpdateSupportWorker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, workerMissing)
		return
	}
	var up model.SupportWorkerUpdate
	if err := a.decodeBody(r, schema.SupportWorkerUpdate, &up, false); err != nil {
		handleError(w, r, err, workerMissing)
		return
	}
	sw, err := a.Store.UpdateSupportWorker(r.Context(), id, up)
	if err != nil {
		handleError(w, r, err, workerMissing)
		return
	}
	a.publish(r.Context(), "support_worker", sw.ID, model.ActionUpdated, sw)
	writeJSON(w, http.StatusOK, sw)
}

// @Summary Delete a support worker
// @Tags SupportWorkers
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Support worker ID"
// @Success 200 {object} model.SupportWorker
// @Failure 404 {object} ErrorResponse
// @Router /support_workers/{id} [delete]
func (a *API) DeleteSupportWorker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, workerDeleteMissing)
		return
	}
	sw, err := a.Store.DeleteSupportWorker(r.Context(), id)
	if err != nil {
		handleError(w, r, err, workerDeleteMissing)
		return
	}
	a.publish(r.Context(), "support_worker", sw.ID, model.ActionDeleted, sw)
	writeJSON(w, http.StatusOK, sw)
}

// @Summary Link a tenant to this support worker
// @Tags SupportWorkers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Support worker ID"
// @Param tenant_id path int true "Tenant ID"
// @Param body body model.LinkInput false "Optional rank"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /support_workers/{id}/link_tenant/{tenant_id} [post]
func (a *API) LinkSupportWorkerTenant(w http.ResponseWriter, r *http.Request) {
	workerID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenantWorkerLinkMissing)
		return
	}
	tenantID, err := pathID(r, "tenant_id")
	if err != nil {
		handleError(w, r, err, tenantWorkerLinkMissing)
		return
	}
	a.linkSupportWorker(w, r, tenantID, workerID, fmt.Sprintf("Support Worker %d linked to Tenant %d", workerID, tenantID))
}
