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
	tenancyMissing       notFound = "Tenancy does not exist"
	tenancyDeleteMissing notFound = "Tenancy not found"
	tenancyLinkMissing   notFound = "Tenant or Tenancy not found"
)

func tenancyPayload(t *model.Tenancy) map[string]interface{} {
	return map[string]interface{}{
		"id":             t.ID,
		"start_date":     t.StartDate,
		"end_date":       t.EndDate,
		"tenancy_status": t.Status,
		"property_id":    t.PropertyID,
	}
}

// @Summary List tenancies
// @Tags Tenancies
// @Produce json
// @Success 200 {array} model.Tenancy
// @Router /tenancies [get]
func (a *API) ListTenancies(w http.ResponseWriter, r *http.Request) {
	tenancies, err := a.Store.ListTenancies(r.Context())
	if err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	writeJSON(w, http.StatusOK, tenancies)
}

// @Summary Search tenancies
// @Description Every filter is optional; given filters must all match.
// @Tags Tenancies
// @Produce json
// @Param status query string false "Exact tenancy status"
// @Param start_date query string false "Earliest start date (YYYY-MM-DD)"
// @Param end_date query string false "Latest end date (YYYY-MM-DD)"
// @Success 200 {array} model.Tenancy
// @Failure 400 {object} ErrorResponse
// @Router /tenancies/search [get]
func (a *API) SearchTenancies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.TenancyFilter{Status: q.Get("status")}
	bounds := []struct {
		param string
		dst   **model.Date
	}{
		{"start_date", &filter.StartFrom},
		{"end_date", &filter.EndBy},
	}
	for _, b := range bounds {
		raw := q.Get(b.param)
		if raw == "" {
			continue
		}
		d, err := model.ParseDate(raw)
		if err != nil {
			handleError(w, r, &schema.ValidationError{Problems: []string{fmt.Sprintf("%s: %v", b.param, err)}}, tenancyMissing)
			return
		}
		*b.dst = &d
	}

	tenancies, err := a.Store.SearchTenancies(r.Context(), filter)
	if err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	writeJSON(w, http.StatusOK, tenancies)
}

// @Summary Get a tenancy
// @Tags Tenancies
// @Produce json
// @Param id path int true "Tenancy ID"
// @Success 200 {object} model.Tenancy
// @Failure 404 {object} ErrorResponse
// @Router /tenancies/{id} [get]
func (a *API) GetTenancy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	t, err := a.Store.GetTenancy(r.Context(), id)
	if err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// @Summary List tenancies with their property
// @Tags Tenancies
// @Produce json
// @Success 200 {array} model.TenancyWithProperty
// @Router /tenancies/properties [get]
func (a *API) ListTenanciesWithProperty(w http.ResponseWriter, r *http.Request) {
	tenancies, err := a.Store.ListTenanciesWithProperty(r.Context())
	if err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	writeJSON(w, http.StatusOK, tenancies)
}

// @Summary List tenancies with their tenants
// @Tags Tenancies
// @Produce json
// @Success 200 {array} model.TenancyWithTenants
// @Router /tenancies/tenants [get]
func (a *API) ListTenanciesWithTenants(w http.ResponseWriter, r *http.Request) {
	tenancies, err := a.Store.ListTenanciesWithTenants(r.Context())
	if err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	writeJSON(w, http.StatusOK, tenancies)
}

// @Summary Create a tenancy
// @Tags Tenancies
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body model.TenancyInput true "Tenancy"
// @Success 201 {object} model.Tenancy
// @Failure 400 {object} ErrorResponse
// @Router /tenancies [post]
func (a *API) CreateTenancy(w http.ResponseWriter, r *http.Request) {
	var in model.TenancyInput
	if err := a.decodeBody(r, schema.TenancyCreate, &in, false); err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	t, err := a.Store.CreateTenancy(r.Context(), in)
	if err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	a.publish(r.Context(), "tenancy", t.ID, model.ActionCreated, tenancyPayload(t))
	writeJSON(w, http.StatusCreated, t)
}

// @Summary Update a tenancy
// @Description A null end_date reopens the tenancy.
// @Tags Tenancies
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Tenancy ID"
// @Param body body model.TenancyInput true "Fields to change"
// @Success 200 {object} model.Tenancy
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenancies/{id} [put]
func (a *API) UpdateTenancy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	var up model.TenancyUpdate
	if err := a.decodeBody(r, schema.TenancyUpdate, &up, false); err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	t, err := a.Store.UpdateTenancy(r.Context(), id, up)
	if err != nil {
		handleError(w, r, err, tenancyMissing)
		return
	}
	a.publish(r.Context(), "tenancy", t.ID, model.ActionUpdated, tenancyPayload(t))
	writeJSON(w, http.StatusOK, t)
}

// @Summary Delete a tenancy
// @Tags Tenancies
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Tenancy ID"
// @Success 200 {object} model.Tenancy
// @Failure 404 {object} ErrorResponse
// @Router /tenancies/{id} [delete]
func (a *API) DeleteTenancy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenancyDeleteMissing)
		return
	}
	t, err := a.Store.DeleteTenancy(r.Context(), id)
	if err != nil {
		handleError(w, r, err, tenancyDeleteMissing)
		return
	}
	a.publish(r.Context(), "tenancy", t.ID, model.ActionDeleted, tenancyPayload(t))
	writeJSON(w, http.StatusOK, t)
}

// @Summary Link a tenant to this tenancy
// @Tags Tenancies
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Tenancy ID"
// @Param tenant_id path int true "Tenant ID"
// @Param body body model.LinkInput false "Optional rank"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenancies/{id}/link_tenant/{tenant_id} [post]
func (a *API) LinkTenancyTenant(w http.ResponseWriter, r *http.Request) {
	tenancyID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, tenancyLinkMissing)
		return
	}
	tenantID, err := pathID(r, "tenant_id")
	if err != nil {
		handleError(w, r, err, tenancyLinkMissing)
		return
	}
	a.linkTenancy(w, r, tenantID, tenancyID, fmt.Sprintf("Tenant %d linked to Tenancy %d", tenantID, tenancyID))
}

// linkTenancy is shared by both directions of the tenant tenancy link.
// message is sent with the 201.
func (a *API) linkTenancy(w http.ResponseWriter, r *http.Request, tenantID, tenancyID int64, message string) {
	var in model.LinkInput
	if err := a.decodeBody(r, schema.Link, &in, true); err != nil {
		handleError(w, r, err, tenancyLinkMissing)
		return
	}
	link, err := a.Store.LinkTenantTenancy(r.Context(), tenantID, tenancyID, in.Rank)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateLink) {
			writeError(w, http.StatusBadRequest, "Tenant already linked to this tenancy")
			return
		}
		handleError(w, r, err, tenancyLinkMissing)
		return
	}
	a.publish(r.Context(), "tenant_tenancy", link.ID, model.ActionLinked, link)
	writeJSON(w, http.StatusCreated, MessageResponse{Message: message})
}
