package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"property-management/internal/model"
)

var propertyColumns = []string{"id", "address", "property_manager_id"}

const propertyReturning = "RETURNING id, address, property_manager_id"

func (s *Storage) ListProperties(ctx context.Context) ([]model.Property, error) {
	properties := []model.Property{}
	err := selectAll(ctx, s.DB, &properties, psql.Select(propertyColumns...).From("property").OrderBy("id"))
	return properties, err
}

func (s *Storage) GetProperty(ctx context.Context, id int64) (*model.Property, error) {
	var p model.Property
	if err := get(ctx, s.DB, &p, psql.Select(propertyColumns...).From("property").Where(sq.Eq{"id": id})); err != nil {
		return nil, err
	}
	return &p, nil
}

type propertyManagerRow struct {
	PropertyID int64 `db:"property_id"`
	model.PropertyManagerRef
}

func (s *Storage) ListPropertiesWithManager(ctx context.Context) ([]model.PropertyWithManager, error) {
	properties, err := s.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	var rows []propertyManagerRow
	q := psql.Select("p.id AS property_id", "m.id", "m.name").
		From("property p").
		Join("property_manager m ON m.id = p.property_manager_id")
	if err := selectAll(ctx, s.DB, &rows, q); err != nil {
		return nil, err
	}
	managers := make(map[int64]model.PropertyManagerRef, len(rows))
	for _, r := range rows {
		managers[r.PropertyID] = r.PropertyManagerRef
	}

	out := make([]model.PropertyWithManager, 0, len(properties))
	for _, p := range properties {
		item := model.PropertyWithManager{Property: p}
		if m, ok := managers[p.ID]; ok {
			item.PropertyManager = &m
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *Storage) CreateProperty(ctx context.Context, in model.PropertyInput) (*model.Property, error) {
	return createProperty(ctx, s.DB, in)
}

func createProperty(ctx context.Context, q sqlx.QueryerContext, in model.PropertyInput) (*model.Property, error) {
	var p model.Property
	b := psql.Insert("property").
		Columns("address", "property_manager_id").
		Values(in.Address, in.PropertyManagerID).
		Suffix(propertyReturning)
	if err := get(ctx, q, &p, b); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) UpdateProperty(ctx context.Context, id int64, up model.PropertyUpdate) (*model.Property, error) {
	set := map[string]interface{}{}
	setOptional(set, "address", up.Address.Set, up.Address.Null, up.Address.Value)
	setOptional(set, "property_manager_id", up.PropertyManagerID.Set, up.PropertyManagerID.Null, up.PropertyManagerID.Value)
	if len(set) == 0 {
		return s.GetProperty(ctx, id)
	}

	var p model.Property
	b := psql.Update("property").SetMap(set).Where(sq.Eq{"id": id}).Suffix(propertyReturning)
	if err := get(ctx, s.DB, &p, b); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) DeleteProperty(ctx context.Context, id int64) (*model.Property, error) {
	var p model.Property
	b := psql.Delete("property").Where(sq.Eq{"id": id}).Suffix(propertyReturning)
	if err := get(ctx, s.DB, &p, b); err != nil {
		return nil, err
	}
	return &p, nil
}
