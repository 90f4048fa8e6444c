package api

import (
	"net/http"

	"property-management/internal/model"
	"property-management/internal/schema"
)

const (
	managerMissing       notFound = "Property Manager does not exist"
	managerDeleteMissing notFound = "Property Manager not found"
)

// @Summary List property managers
// @Tags PropertyManagers
// @Produce json
// @Success 200 {array} model.PropertyManager
// @Router /property_managers [get]
func (a *API) ListPropertyManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := a.Store.ListPropertyManagers(r.Context())
	if err != nil {
		handleError(w, r, err, managerMissing)
		return
	}
	writeJSON(w, http.StatusOK, managers)
}

// @Summary Get a property manager
// @Tags PropertyManagers
// @Produce json
// @Param id path int true "Property manager ID"
// @Success 200 {object} model.PropertyManager
// @Failure 404 {object} ErrorResponse
// @Router /property_managers/{id} [get]
func (a *API) GetPropertyManager(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, managerMissing)
		return
	}
	m, err := a.Store.GetPropertyManager(r.Context(), id)
	if err != nil {
		handleError(w, r, err, managerMissing)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary List property managers with their properties
// @Tags PropertyManagers
// @Produce json
// @Success 200 {array} model.PropertyManagerWithProperties
// @Router /property_managers/properties [get]
func (a *API) ListPropertyManagersWithProperties(w http.ResponseWriter, r *http.Request) {
	managers, err := a.Store.ListPropertyManagersWithProperties(r.Context())
	if err != nil {
		handleError(w, r, err, managerMissing)
		return
	}
	writeJSON(w, http.StatusOK, managers)
}

// @Summary Create a property manager
// @Tags PropertyManagers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body model.PropertyManagerInput true "Property manager"
// @Success 201 {object} model.PropertyManager
// @Failure 400 {object} ErrorResponse
// @Router /property_managers [post]
func (a *API) CreatePropertyManager(w http.ResponseWriter, r *http.Request) {
	var in model.PropertyManagerInput
	if err := a.decodeBody(r, schema.PropertyManagerCreate, &in, false); err != nil {
		handleError(w, r, err, managerMissing)
		return
	}
	m, err := a.Store.CreatePropertyManager(r.Context(), in)
	if err != nil {
		handleError(w, r, err, managerMissing)
		return
	}
	a.publish(r.Context(), "property_manager", m.ID, model.ActionCreated, m)
	writeJSON(w, http.StatusCreated, m)
}

// @Summary Update a property manager
// @Tags PropertyManagers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Property manager ID"
// @Param body body model.PropertyManagerInput true "Fields to change"
// @Success 200 {object} model.PropertyManager
// @Failure 404 {object} ErrorResponse
// @Router /property_managers/{id} [put]
func (a *API) UpdatePropertyManager(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, managerMissing)
		return
	}
	var up model.PropertyManagerUpdate
	if err := a.decodeBody(r, schema.PropertyManagerUpdate, &up, false); err != nil {
		handleError(w, r, err, managerMissing)
		return
	}
	m, err := a.Store.UpdatePropertyManager(r.Context(), id, up)
	if err != nil {
		handleError(w, r, err, managerMissing)
		return
	}
	a.publish(r.Context(), "property_manager", m.ID, model.ActionUpdated, m)
	writeJSON(w, http.StatusOK, m)
}

// @Summary Delete a property manager with its properties and tenancies
// @Tags PropertyManagers
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Property manager ID"
// @Success 200 {object} model.PropertyManager
// @Failure 404 {object} ErrorResponse
// @Router /property_managers/{id} [delete]
func (a *API) DeletePropertyManager(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, managerDeleteMissing)
		return
	}
	m, err := a.Store.DeletePropertyManager(r.Context(), id)
	if err != nil {
		handleError(w, r, err, managerDeleteMissing)
		return
	}
	a.publish(r.Context(), "property_manager", m.ID, model.ActionDeleted, m)
	writeJSON(w, http.StatusOK, m)
}
