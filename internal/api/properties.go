package api

import (
	"net/http"

	"property-management/internal/model"
	"property-management/internal/schema"
)

const (
	propertyMissing       notFound = "Property does not exist"
	propertyDeleteMissing notFound = "Property not found"
)

// propertyPayload includes the manager id the public view hides.
func propertyPayload(p *model.Property) map[string]interface{} {
	return map[string]interface{}{"id": p.ID, "address": p.Address, "property_manager_id": p.PropertyManagerID}
}

// @Summary List properties
// @Tags Properties
// @Produce json
// @Success 200 {array} model.Property
// @Router /properties [get]
func (a *API) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := a.Store.ListProperties(r.Context())
	if err != nil {
		handleError(w, r, err, propertyMissing)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

// @Summary Get a property
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} model.Property
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [get]
func (a *API) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, propertyMissing)
		return
	}
	p, err := a.Store.GetProperty(r.Context(), id)
	if err != nil {
		handleError(w, r, err, propertyMissing)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Summary List properties with their manager
// @Tags Properties
// @Produce json
// @Success 200 {array} model.PropertyWithManager
// @Router /properties/property_managers [get]
func (a *API) ListPropertiesWithManager(w http.ResponseWriter, r *http.Request) {
	properties, err := a.Store.ListPropertiesWithManager(r.Context())
	if err != nil {
		handleError(w, r, err, propertyMissing)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

// @Summary Create a property
// @Tags Properties
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body model.PropertyInput true "Property"
// @Success 201 {object} model.Property
// @Failure 400 {object} ErrorResponse
// @Router /properties [post]
func (a *API) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var in model.PropertyInput
	if err := a.decodeBody(r, schema.PropertyCreate, &in, false); err != nil {
		handleError(w, r, err, propertyMissing)
		return
	}
	p, err := a.Store.CreateProperty(r.Context(), in)
	if err != nil {
		handleError(w, r, err, propertyMissing)
		return
	}
	a.publish(r.Context(), "property", p.ID, model.ActionCreated, propertyPayload(p))
	writeJSON(w, http.StatusCreated, p)
}

// @Summary Update a property
// @Tags Properties
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param body body model.PropertyInput true "Fields to change"
// @Success 200 {object} model.Property
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [put]
func (a *API) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, propertyMissing)
		return
	}
	var up model.PropertyUpdate
	if err := a.decodeBody(r, schema.PropertyUpdate, &up, false); err != nil {
		handleError(w, r, err, propertyMissing)
		return
	}
	p, err := a.Store.UpdateProperty(r.Context(), id, up)
	if err != nil {
		handleError(w, r, err, propertyMissing)
		return
	}
	a.publish(r.Context(), "property", p.ID, model.ActionUpdated, propertyPayload(p))
	writeJSON(w, http.StatusOK, p)
}

// @Summary Delete a property with its tenancies
// @Tags Properties
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} model.Property
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [delete]
func (a *API) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, err, propertyDeleteMissing)
		return
	}
	p, err := a.Store.DeleteProperty(r.Context(), id)
	if err != nil {
		handleError(w, r, err, propertyDeleteMissing)
		return
	}
	a.publish(r.Context(), "property", p.ID, model.ActionDeleted, propertyPayload(p))
	writeJSON(w, http.StatusOK, p)
}
