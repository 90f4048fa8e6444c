package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"property-management/internal/model"
)

var tenantColumns = []string{"id", "name", "date_of_birth", "phone", "email"}

const tenantReturning = "RETURNING id, name, date_of_birth, phone, email"

func (s *Storage) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	tenants := []model.Tenant{}
	err := selectAll(ctx, s.DB, &tenants, psql.Select(tenantColumns...).From("tenant").OrderBy("id"))
	return tenants, err
}

func (s *Storage) GetTenant(ctx context.Context, id int64) (*model.Tenant, error) {
	var t model.Tenant
	if err := get(ctx, s.DB, &t, psql.Select(tenantColumns...).From("tenant").Where(sq.Eq{"id": id})); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) listTenantContacts(ctx context.Context) ([]model.TenantContact, []int64, error) {
	contacts := []model.TenantContact{}
	q := psql.Select("id", "name", "phone", "email").From("tenant").OrderBy("id")
	if err := selectAll(ctx, s.DB, &contacts, q); err != nil {
		return nil, nil, err
	}
	ids := make([]int64, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.ID)
	}
	return contacts, ids, nil
}

type tenantTenancyRow struct {
	TenantID int64 `db:"tenant_id"`
	model.Tenancy
}

func (s *Storage) ListTenantsWithTenancies(ctx context.Context) ([]model.TenantWithTenancies, error) {
	contacts, ids, err := s.listTenantContacts(ctx)
	if err != nil {
		return nil, err
	}

	var rows []tenantTenancyRow
	if len(ids) > 0 {
		q := psql.Select("tt.tenant_id", "y.id", "y.start_date", "y.end_date", "y.tenancy_status", "y.property_id").
			From("tenant_tenancy tt").
			Join("tenancy y ON y.id = tt.tenancy_id").
			Where(sq.Eq{"tt.tenant_id": ids}).
			OrderBy("tt.rank NULLS LAST", "y.id")
		if err := selectAll(ctx, s.DB, &rows, q); err != nil {
			return nil, err
		}
	}
	byTenant := groupByOwner(rows, func(r tenantTenancyRow) (int64, model.Tenancy) {
		return r.TenantID, r.Tenancy
	})

	out := make([]model.TenantWithTenancies, 0, len(contacts))
	for _, c := range contacts {
		tenancies := byTenant[c.ID]
		if tenancies == nil {
			tenancies = []model.Tenancy{}
		}
		out = append(out, model.TenantWithTenancies{TenantContact: c, Tenancies: tenancies})
	}
	return out, nil
}

type tenantWorkerRow struct {
	TenantID int64 `db:"tenant_id"`
	model.SupportWorkerRef
}

func (s *Storage) ListTenantsWithSupportWorkers(ctx context.Context) ([]model.TenantWithSupportWorkers, error) {
	contacts, ids, err := s.listTenantContacts(ctx)
	if err != nil {
		return nil, err
	}

	var rows []tenantWorkerRow
	if len(ids) > 0 {
		q := psql.Select("ts.tenant_id", "w.id", "w.name").
			From("tenant_support_worker ts").
			Join("support_worker w ON w.id = ts.support_worker_id").
			Where(sq.Eq{"ts.tenant_id": ids}).
			OrderBy("ts.rank NULLS LAST", "w.id")
		if err := selectAll(ctx, s.DB, &rows, q); err != nil {
			return nil, err
		}
	}
	byTenant := groupByOwner(rows, func(r tenantWorkerRow) (int64, model.SupportWorkerRef) {
		return r.TenantID, r.SupportWorkerRef
	})

	out := make([]model.TenantWithSupportWorkers, 0, len(contacts))
	for _, c := range contacts {
		workers := byTenant[c.ID]
		if workers == nil {
			workers = []model.SupportWorkerRef{}
		}
		out = append(out, model.TenantWithSupportWorkers{TenantContact: c, SupportWorkers: workers})
	}
	return out, nil
}

func (s *Storage) CreateTenant(ctx context.Context, in model.TenantInput) (*model.Tenant, error) {
	return createTenant(ctx, s.DB, in)
}

func createTenant(ctx context.Context, q sqlx.QueryerContext, in model.TenantInput) (*model.Tenant, error) {
	var t model.Tenant
	b := psql.Insert("tenant").
		Columns("name", "date_of_birth", "phone", "email").
		Values(in.Name, in.DateOfBirth, in.Phone, in.Email).
		Suffix(tenantReturning)
	if err := get(ctx, q, &t, b); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) UpdateTenant(ctx context.Context, id int64, up model.TenantUpdate) (*model.Tenant, error) {
	set := map[string]interface{}{}
	setOptional(set, "name", up.Name.Set, up.Name.Null, up.Name.Value)
	setOptional(set, "date_of_birth", up.DateOfBirth.Set, up.DateOfBirth.Null, up.DateOfBirth.Value)
	setOptional(set, "phone", up.Phone.Set, up.Phone.Null, up.Phone.Value)
	setOptional(set, "email", up.Email.Set, up.Email.Null, up.Email.Value)
	if len(set) == 0 {
		return s.GetTenant(ctx, id)
	}

	var t model.Tenant
	b := psql.Update("tenant").SetMap(set).Where(sq.Eq{"id": id}).Suffix(tenantReturning)
	if err := get(ctx, s.DB, &t, b); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) DeleteTenant(ctx context.Context, id int64) (*model.Tenant, error) {
	var t model.Tenant
	b := psql.Delete("tenant").Where(sq.Eq{"id": id}).Suffix(tenantReturning)
	if err := get(ctx, s.DB, &t, b); err != nil {
		return nil, err
	}
	return &t, nil
}
