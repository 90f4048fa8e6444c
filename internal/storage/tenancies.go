package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"property-management/internal/model"
)

var tenancyColumns = []string{"id", "start_date", "end_date", "tenancy_status", "property_id"}

const tenancyReturning = "RETURNING id, start_date, end_date, tenancy_status, property_id"

func (s *Storage) ListTenancies(ctx context.Context) ([]model.Tenancy, error) {
	return s.SearchTenancies(ctx, model.TenancyFilter{})
}

// SearchTenancies returns tenancies matching every non-zero filter field.
// A tenancy without an end date never matches an EndBy bound.
func (s *Storage) SearchTenancies(ctx context.Context, f model.TenancyFilter) ([]model.Tenancy, error) {
	q := psql.Select(tenancyColumns...).From("tenancy")
	if f.Status != "" {
		q = q.Where(sq.Eq{"tenancy_status": f.Status})
	}
	if f.StartFrom != nil {
		q = q.Where(sq.GtOrEq{"start_date": *f.StartFrom})
	}
	if f.EndBy != nil {
		q = q.Where(sq.LtOrEq{"end_date": *f.EndBy})
	}

	tenancies := []model.Tenancy{}
	err := selectAll(ctx, s.DB, &tenancies, q.OrderBy("id"))
	return tenancies, err
}

func (s *Storage) GetTenancy(ctx context.Context, id int64) (*model.Tenancy, error) {
	var t model.Tenancy
	if err := get(ctx, s.DB, &t, psql.Select(tenancyColumns...).From("tenancy").Where(sq.Eq{"id": id})); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) ListTenanciesWithProperty(ctx context.Context) ([]model.TenancyWithProperty, error) {
	tenancies, err := s.ListTenancies(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(tenancies))
	for _, t := range tenancies {
		ids = append(ids, t.PropertyID)
	}

	var properties []model.PropertyRef
	if len(ids) > 0 {
		q := psql.Select("id", "address").From("property").Where(sq.Eq{"id": ids})
		if err := selectAll(ctx, s.DB, &properties, q); err != nil {
			return nil, err
		}
	}
	byID := make(map[int64]model.PropertyRef, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	out := make([]model.TenancyWithProperty, 0, len(tenancies))
	for _, t := range tenancies {
		item := model.TenancyWithProperty{Tenancy: t}
		if p, ok := byID[t.PropertyID]; ok {
			item.Property = &p
		}
		out = append(out, item)
	}
	return out, nil
}

type tenancyTenantRow struct {
	TenancyID int64 `db:"tenancy_id"`
	model.TenantRef
}

func (s *Storage) ListTenanciesWithTenants(ctx context.Context) ([]model.TenancyWithTenants, error) {
	tenancies, err := s.ListTenancies(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(tenancies))
	for _, t := range tenancies {
		ids = append(ids, t.ID)
	}

	var rows []tenancyTenantRow
	if len(ids) > 0 {
		q := psql.Select("tt.tenancy_id", "t.id", "t.name").
			From("tenant_tenancy tt").
			Join("tenant t ON t.id = tt.tenant_id").
			Where(sq.Eq{"tt.tenancy_id": ids}).
			OrderBy("tt.rank NULLS LAST", "t.id")
		if err := selectAll(ctx, s.DB, &rows, q); err != nil {
			return nil, err
		}
	}
	byTenancy := groupByOwner(rows, func(r tenancyTenantRow) (int64, model.TenantRef) {
		return r.TenancyID, r.TenantRef
	})

	out := make([]model.TenancyWithTenants, 0, len(tenancies))
	for _, t := range tenancies {
		tenants := byTenancy[t.ID]
		if tenants == nil {
			tenants = []model.TenantRef{}
		}
		out = append(out, model.TenancyWithTenants{Tenancy: t, Tenants: tenants})
	}
	return out, nil
}

func (s *Storage) CreateTenancy(ctx context.Context, in model.TenancyInput) (*model.Tenancy, error) {
	return createTenancy(ctx, s.DB, in)
}

func createTenancy(ctx context.Context, q sqlx.QueryerContext, in model.TenancyInput) (*model.Tenancy, error) {
	candidate := model.Tenancy{StartDate: in.StartDate, EndDate: in.EndDate}
	if !candidate.ValidRange() {
		return nil, ErrInvalidDateRange
	}

	var t model.Tenancy
	b := psql.Insert("tenancy").
		Columns("start_date", "end_date", "tenancy_status", "property_id").
		Values(in.StartDate, in.EndDate, in.Status, in.PropertyID).
		Suffix(tenancyReturning)
	if err := get(ctx, q, &t, b); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTenancy merges the update into the locked row so the date range is
// checked against the values that will be stored.
func (s *Storage) UpdateTenancy(ctx context.Context, id int64, up model.TenancyUpdate) (*model.Tenancy, error) {
	var t model.Tenancy
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		current := psql.Select(tenancyColumns...).From("tenancy").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")
		if err := get(ctx, tx, &t, current); err != nil {
			return err
		}
		up.Apply(&t)
		if !t.ValidRange() {
			return ErrInvalidDateRange
		}
		b := psql.Update("tenancy").
			SetMap(map[string]interface{}{
				"start_date":     t.StartDate,
				"end_date":       t.EndDate,
				"tenancy_status": t.Status,
				"property_id":    t.PropertyID,
			}).
			Where(sq.Eq{"id": id}).
			Suffix(tenancyReturning)
		return get(ctx, tx, &t, b)
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) DeleteTenancy(ctx context.Context, id int64) (*model.Tenancy, error) {
	var t model.Tenancy
	b := psql.Delete("tenancy").Where(sq.Eq{"id": id}).Suffix(tenancyReturning)
	if err := get(ctx, s.DB, &t, b); err != nil {
		return nil, err
	}
	return &t, nil
}
