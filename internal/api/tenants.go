package api

import (
	"errors"
	"fmt"
	"net/http"

	"property-management/internal/model"
	"property-management/internal/schema"
	"property-management/internal/storage"
)

const (
	tenantMissing           notFound = "Tenant does not exist"
	tenantDeleteMissing     notFound = "Tenant not found"
	tenantWorkerLinkMissing notFound = "Tenant or Support Worker not found"
	tenancyUnlinkMissing    notFound = "Tenant is not linked to this tenancy"
	workerUnlinkMissing     notFound = "Tenant is not linked to this support worker"
)

// @Summary List tenants
// @Tags Tenants
// @Produce json
// @Success 200 {array} model.Tenant
// @Router /tenants [get]
func (a *API) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.Store.ListTenants(r.Context())
	if err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

// @Summary Get a tenant
// @Tags Tenants
// @Produce json
// @Param id path int true "Tenant ID"
// @Success 200 {object} model.Tenant
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id} [get]
func (a *API) GetTenant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	t, err := a.Store.GetTenant(r.Context(), id)
	if err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// @Summary List tenants with their tenancies
// @Tags Tenants
// @Produce json
// @Success 200 {array} model.TenantWithTenancies
// @Router /tenants/tenancies [get]
func (a *API) ListTenantsWithTenancies(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.Store.ListTenantsWithTenancies(r.Context())
	if err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

// @Summary List tenants with their support workers
// @Tags Tenants
// @Produce json
// @Success 200 {array} model.TenantWithSupportWorkers
// @Router /tenants/support_workers [get]
func (a *API) ListTenantsWithSupportWorkers(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.Store.ListTenantsWithSupportWorkers(r.Context())
	if err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

// @Summary Create a tenant
// @Tags Tenants
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body model.TenantInput true "Tenant"
// @Success 201 {object} model.Tenant
// @Failure 400 {object} ErrorResponse
// @Router /tenants [post]
func (a *API) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var in model.TenantInput
	if err := a.decodeBody(r, schema.TenantCreate, &in, false); err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	t, err := a.Store.CreateTenant(r.Context(), in)
	if err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	a.publish(r.Context(), "tenant", t.ID, model.ActionCreated, t)
	writeJSON(w, http.StatusCreated, t)
}

// @Summary Update a tenant
// @Description A null phone or email clears it.
// @Tags Tenants
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Param body body model.TenantInput true "Fields to change"
// @Success 200 {object} model.Tenant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id} [put]
func (a *API) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	var up model.TenantUpdate
	if err := a.decodeBody(r, schema.TenantUpdate, &up, false); err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	t, err := a.Store.UpdateTenant(r.Context(), id, up)
	if err != nil {
		handleError(w, r, err, tenantMissing)
		return
	}
	a.publish(r.Context(), "tenant", t.ID, model.ActionUpdated, t)
	writeJSON(w, http.StatusOK, t)
}

// @Summary Delete a tenant
// @Tags Tenants
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Tenant ID"
// @Success 200 {object} model.Tenant
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id} [delete]
func (a *API) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenantDeleteMissing)
		return
	}
	t, err := a.Store.DeleteTenant(r.Context(), id)
	if err != nil {
		handleError(w, r, err, tenantDeleteMissing)
		return
	}
	a.publish(r.Context(), "tenant", t.ID, model.ActionDeleted, t)
	writeJSON(w, http.StatusOK, t)
}

// @Summary Link a tenancy to this tenant
// @Tags Tenants
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Param tenancy_id path int true "Tenancy ID"
// @Param body body model.LinkInput false "Optional rank"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/link_tenancy/{tenancy_id} [post]
func (a *API) LinkTenantTenancy(w http.ResponseWriter, r *http.Request) {
	tenantID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenancyLinkMissing)
		return
	}
	tenancyID, err := pathID(r, "tenancy_id")
	if err != nil {
		handleError(w, r, err, tenancyLinkMissing)
		return
	}
	a.linkTenancy(w, r, tenantID, tenancyID, fmt.Sprintf("Tenant %d linked to Tenancy %d", tenantID, tenancyID))
}

// @Summary Unlink a tenancy from this tenant
// @Tags Tenants
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Tenant ID"
// @Param tenancy_id path int true "Tenancy ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/link_tenancy/{tenancy_id} [delete]
func (a *API) UnlinkTenantTenancy(w http.ResponseWriter, r *http.Request) {
	tenantID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenancyUnlinkMissing)
		return
	}
	tenancyID, err := pathID(r, "tenancy_id")
	if err != nil {
		handleError(w, r, err, tenancyUnlinkMissing)
		return
	}
	link, err := a.Store.UnlinkTenantTenancy(r.Context(), tenantID, tenancyID)
	if err != nil {
		handleError(w, r, err, tenancyUnlinkMissing)
		return
	}
	a.publish(r.Context(), "tenant_tenancy", link.ID, model.ActionUnlinked, link)
	writeJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Tenant %d unlinked from Tenancy %d", tenantID, tenancyID)})
}

// @Summary Link a support worker to this tenant
// @Tags Tenants
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Param worker_id path int true "Support worker ID"
// @Param body body model.LinkInput false "Optional rank"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/link_support_worker/{worker_id} [post]
func (a *API) LinkTenantSupportWorker(w http.ResponseWriter, r *http.Request) {
	tenantID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenantWorkerLinkMissing)
		return
	}
	workerID, err := pathID(r, "worker_id")
	if err != nil {
		handleError(w, r, err, tenantWorkerLinkMissing)
		return
	}
	a.linkSupportWorker(w, r, tenantID, workerID, fmt.Sprintf("Tenant %d linked to Support Worker %d", tenantID, workerID))
}

// linkSupportWorker is shared by both directions of the tenant support worker
// link. message is sent with the 201.
func (a *API) linkSupportWorker(w http.ResponseWriter, r *http.Request, tenantID, workerID int64, message string) {
	var in model.LinkInput
	if err := a.decodeBody(r, schema.Link, &in, true); err != nil {
		handleError(w, r, err, tenantWorkerLinkMissing)
		return
	}
	link, err := a.Store.LinkTenantSupportWorker(r.Context(), tenantID, workerID, in.Rank)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateLink) {
			writeError(w, http.StatusBadRequest, "Tenant already linked to this support worker")
			return
		}
		handleError(w, r, err, tenantWorkerLinkMissing)
		return
	}
	a.publish(r.Context(), "tenant_support_worker", link.ID, model.ActionLinked, link)
	writeJSON(w, http.StatusCreated, MessageResponse{Message: message})
}

// @Summary Unlink a support worker from this tenant
// @Tags Tenants
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Tenant ID"
// @Param worker_id path int true "Support worker ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/link_support_worker/{worker_id} [delete]
func (a *API) UnlinkTenantSupportWorker(w http.ResponseWriter, r *http.Request) {
	tenantID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, workerUnlinkMissing)
		return
	}
	workerID, err := pathID(r, "worker_id")
	if err != nil {
		handleError(w, r, err, workerUnlinkMissing)
		return
	}
	link, err := a.Store.UnlinkTenantSupportWorker(r.Context(), tenantID, workerID)
	if err != nil {
		handleError(w, r, err, workerUnlinkMissing)
		return
	}
	a.publish(r.Context(), "tenant_support_worker", link.ID, model.ActionUnlinked, link)
	writeJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Tenant %d unlinked from Support Worker %d", tenantID, workerID)})
}
