package storage

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"property-management/internal/model"
)

// LinkTenantTenancy attaches a tenant to a tenancy. Both rows are locked, so
// two concurrent requests for the same pair cannot both pass the duplicate check.
func (s *Storage) LinkTenantTenancy(ctx context.Context, tenantID, tenancyID int64, rank *int) (*model.TenantTenancy, error) {
	var link *model.TenantTenancy
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockRow(ctx, tx, "tenant", tenantID); err != nil {
			return err
		}
		if err := lockRow(ctx, tx, "tenancy", tenancyID); err != nil {
			return err
		}

		var existing int64
		err := get(ctx, tx, &existing, psql.Select("id").From("tenant_tenancy").
			Where(sq.Eq{"tenant_id": tenantID, "tenancy_id": tenancyID}).Limit(1))
		switch {
		case err == nil:
			return ErrDuplicateLink
		case !errors.Is(err, ErrNotFound):
			return err
		}

		link, err = insertTenantTenancy(ctx, tx, tenantID, tenancyID, rank)
		return err
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func insertTenantTenancy(ctx context.Context, q sqlx.QueryerContext, tenantID, tenancyID int64, rank *int) (*model.TenantTenancy, error) {
	var link model.TenantTenancy
	b := psql.Insert("tenant_tenancy").
		Columns("rank", "tenancy_id", "tenant_id").
		Values(rank, tenancyID, tenantID).
		Suffix("RETURNING id, rank, tenancy_id, tenant_id")
	if err := get(ctx, q, &link, b); err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *Storage) UnlinkTenantTenancy(ctx context.Context, tenantID, tenancyID int64) (*model.TenantTenancy, error) {
	var link model.TenantTenancy
	b := psql.Delete("tenant_tenancy").
		Where(sq.Eq{"tenant_id": tenantID, "tenancy_id": tenancyID}).
		Suffix("RETURNING id, rank, tenancy_id, tenant_id")
	if err := get(ctx, s.DB, &link, b); err != nil {
		return nil, err
	}
	return &link, nil
}

// LinkTenantSupportWorker attaches a support worker to a tenant, rejecting duplicates.
func (s *Storage) LinkTenantSupportWorker(ctx context.Context, tenantID, workerID int64, rank *int) (*model.TenantSupportWorker, error) {
	var link *model.TenantSupportWorker
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockRow(ctx, tx, "tenant", tenantID); err != nil {
			return err
		}
		if err := lockRow(ctx, tx, "support_worker", workerID); err != nil {
			return err
		}

		var existing int64
		err := get(ctx, tx, &existing, psql.Select("id").From("tenant_support_worker").
			Where(sq.Eq{"tenant_id": tenantID, "support_worker_id": workerID}).Limit(1))
		switch {
		case err == nil:
			return ErrDuplicateLink
		case !errors.Is(err, ErrNotFound):
			return err
		}

		link, err = insertTenantSupportWorker(ctx, tx, tenantID, workerID, rank)
		return err
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func insertTenantSupportWorker(ctx context.Context, q sqlx.QueryerContext, tenantID, workerID int64, rank *int) (*model.TenantSupportWorker, error) {
	var link model.TenantSupportWorker
	b := psql.Insert("tenant_support_worker").
		Columns("rank", "support_worker_id", "tenant_id").
		Values(rank, workerID, tenantID).
		Suffix("RETURNING id, rank, support_worker_id, tenant_id")
	if err := get(ctx, q, &link, b); err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *Storage) UnlinkTenantSupportWorker(ctx context.Context, tenantID, workerID int64) (*model.TenantSupportWorker, error) {
	var link model.TenantSupportWorker
	b := psql.Delete("tenant_support_worker").
		Where(sq.Eq{"tenant_id": tenantID, "support_worker_id": workerID}).
		Suffix("RETURNING id, rank, support_worker_id, tenant_id")
	if err := get(ctx, s.DB, &link, b); err != nil {
		return nil, err
	}
	return &link, nil
}
