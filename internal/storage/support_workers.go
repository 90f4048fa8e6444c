package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"property-management/internal/model"
)

var supportWorkerColumns = []string{"id", "name", "phone", "email"}

const supportWorkerReturning = "RETURNING id, name, phone, email"

func (s *Storage) ListSupportWorkers(ctx context.Context) ([]model.SupportWorker, error) {
	workers := []model.SupportWorker{}
	err := selectAll(ctx, s.DB, &workers, psql.Select(supportWorkerColumns...).From("support_worker").OrderBy("id"))
	return workers, err
}

func (s *Storage) GetSupportWorker(ctx context.Context, id int64) (*model.SupportWorker, error) {
	var w model.SupportWorker
	if err := get(ctx, s.DB, &w, psql.Select(supportWorkerColumns...).From("support_worker").Where(sq.Eq{"id": id})); err != nil {
		return nil, err
	}
	return &w, nil
}

type workerTenantRow struct {
	SupportWorkerID int64 `db:"support_worker_id"`
	model.TenantRef
}

func (s *Storage) ListSupportWorkersWithTenants(ctx context.Context) ([]model.SupportWorkerWithTenants, error) {
	workers, err := s.ListSupportWorkers(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID)
	}

	var rows []workerTenantRow
	if len(ids) > 0 {
		q := psql.Select("ts.support_worker_id", "t.id", "t.name").
			From("tenant_support_worker ts").
			Join("tenant t ON t.id = ts.tenant_id").
			Where(sq.Eq{"ts.support_worker_id": ids}).
			OrderBy("ts.rank NULLS LAST", "t.id")
		if err := selectAll(ctx, s.DB, &rows, q); err != nil {
			return nil, err
		}
	}
	byWorker := groupByOwner(rows, func(r workerTenantRow) (int64, model.TenantRef) {
		return r.SupportWorkerID, r.TenantRef
	})

	out := make([]model.SupportWorkerWithTenants, 0, len(workers))
	for _, w := range workers {
		tenants := byWorker[w.ID]
		if tenants == nil {
			tenants = []model.TenantRef{}
		}
		out = append(out, model.SupportWorkerWithTenants{SupportWorker: w, Tenants: tenants})
	}
	return out, nil
}

func (s *Storage) CreateSupportWorker(ctx context.Context, in model.SupportWorkerInput) (*model.SupportWorker, error) {
	return createSupportWorker(ctx, s.DB, in)
}

func createSupportWorker(ctx context.Context, q sqlx.QueryerContext, in model.SupportWorkerInput) (*model.SupportWorker, error) {
	var w model.SupportWorker
	b := psql.Insert("support_worker").
		Columns("name", "phone", "email").
		Values(in.Name, in.Phone, in.Email).
		Suffix(supportWorkerReturning)
	if err := get(ctx, q, &w, b); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Storage) UpdateSupportWorker(ctx context.Context, id int64, up model.SupportWorkerUpdate) (*model.SupportWorker, error) {
	set := map[string]interface{}{}
	setOptional(set, "name", up.Name.Set, up.Name.Null, up.Name.Value)
	setOptional(set, "phone", up.Phone.Set, up.Phone.Null, up.Phone.Value)
	setOptional(set, "email", up.Email.Set, up.Email.Null, up.Email.Value)
	if len(set) == 0 {
		return s.GetSupportWorker(ctx, id)
	}

	var w model.SupportWorker
	b := psql.Update("support_worker").SetMap(set).Where(sq.Eq{"id": id}).Suffix(supportWorkerReturning)
	if err := get(ctx, s.DB, &w, b); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Storage) DeleteSupportWorker(ctx context.Context, id int64) (*model.SupportWorker, error) {
	var w model.SupportWorker
	b := psql.Delete("support_worker").Where(sq.Eq{"id": id}).Suffix(supportWorkerReturning)
	if err := get(ctx, s.DB, &w, b); err != nil {
		return nil, err
	}
	return &w, nil
}
