package api

import (
	"context"

	"property-management/internal/config"
	"property-management/internal/logger"
	"property-management/internal/model"
	"property-management/internal/schema"
)

// Store is the persistence the handlers need. *storage.Storage implements it.
type Store interface {
	Ping(ctx context.Context) error

	ListPropertyManagers(ctx context.Context) ([]model.PropertyManager, error)
	GetPropertyManager(ctx context.Context, id int64) (*model.PropertyManager, error)
	ListPropertyManagersWithProperties(ctx context.Context) ([]model.PropertyManagerWithProperties, error)
	CreatePropertyManager(ctx context.Context, in model.PropertyManagerInput) (*model.PropertyManager, error)
	UpdatePropertyManager(ctx context.Context, id int64, up model.PropertyManagerUpdate) (*model.PropertyManager, error)
	DeletePropertyManager(ctx context.Context, id int64) (*model.PropertyManager, error)

	ListProperties(ctx context.Context) ([]model.Property, error)
	GetProperty(ctx context.Context, id int64) (*model.Property, error)
	ListPropertiesWithManager(ctx context.Context) ([]model.PropertyWithManager, error)
	CreateProperty(ctx context.Context, in model.PropertyInput) (*model.Property, error)
	UpdateProperty(ctx context.Context, id int64, up model.PropertyUpdate) (*model.Property, error)
	DeleteProperty(ctx context.Context, id int64) (*model.Property, error)

	ListTenancies(ctx context.Context) ([]model.Tenancy, error)
	SearchTenancies(ctx context.Context, f model.TenancyFilter) ([]model.Tenancy, error)
	GetTenancy(ctx context.Context, id int64) (*model.Tenancy, error)
	ListTenanciesWithProperty(ctx context.Context) ([]model.TenancyWithProperty, error)
	ListTenanciesWithTenants(ctx context.Context) ([]model.TenancyWithTenants, error)
	CreateTenancy(ctx context.Context, in model.TenancyInput) (*model.Tenancy, error)
	UpdateTenancy(ctx context.Context, id int64, up model.TenancyUpdate) (*model.Tenancy, error)
	DeleteTenancy(ctx context.Context, id int64) (*model.Tenancy, error)

	ListTenants(ctx context.Context) ([]model.Tenant, error)
	GetTenant(ctx context.Context, id int64) (*model.Tenant, error)
	ListTenantsWithTenancies(ctx context.Context) ([]model.TenantWithTenancies, error)
	ListTenantsWithSupportWorkers(ctx context.Context) ([]model.TenantWithSupportWorkers, error)
	CreateTenant(ctx context.Context, in model.TenantInput) (*model.Tenant, error)
	UpdateTenant(ctx context.Context, id int64, up model.TenantUpdate) (*model.Tenant, error)
	DeleteTenant(ctx context.Context, id int64) (*model.Tenant, error)

	ListSupportWorkers(ctx context.Context) ([]model.SupportWorker, error)
	GetSupportWorker(ctx context.Context, id int64) (*model.SupportWorker, error)
	ListSupportWorkersWithTenants(ctx context.Context) ([]model.SupportWorkerWithTenants, error)
	CreateSupportWorker(ctx context.Context, in model.SupportWorkerInput) (*model.SupportWorker, error)
	UpdateSupportWorker(ctx context.Context, id int64, up model.SupportWorkerUpdate) (*model.SupportWorker, error)
	DeleteSupportWorker(ctx context.Context, id int64) (*model.SupportWorker, error)

	LinkTenantTenancy(ctx context.Context, tenantID, tenancyID int64, rank *int) (*model.TenantTenancy, error)
	UnlinkTenantTenancy(ctx context.Context, tenantID, tenancyID int64) (*model.TenantTenancy, error)
	LinkTenantSupportWorker(ctx context.Context, tenantID, workerID int64, rank *int) (*model.TenantSupportWorker, error)
	UnlinkTenantSupportWorker(ctx context.Context, tenantID, workerID int64) (*model.TenantSupportWorker, error)

	ListAuditEvents(ctx context.Context, cursor string, limit int) ([]model.Event, string, error)
}

// EventPublisher receives a change event after every committed mutation.
type EventPublisher interface {
	Publish(ctx context.Context, e model.Event)
}

type API struct {
	Store     Store
	Events    EventPublisher
	Validator *schema.Validator
	Cfg       *config.Config
}

func NewAPI(store Store, events EventPublisher, validator *schema.Validator, cfg *config.Config) *API {
	return &API{
		Store:     store,
		Events:    events,
		Validator: validator,
		Cfg:       cfg,
	}
}

// publish emits a change event for a committed mutation.
func (a *API) publish(ctx context.Context, entity string, id int64, action string, payload interface{}) {
	if a.Events == nil {
		return
	}
	e, err := model.NewEvent(entity, id, action, payload)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Warn("cannot build change event")
		return
	}
	a.Events.Publish(ctx, e)
}
