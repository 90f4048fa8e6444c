package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"property-management/internal/model"
)

var managerColumns = []string{"id", "name", "phone", "email"}

func (s *Storage) ListPropertyManagers(ctx context.Context) ([]model.PropertyManager, error) {
	managers := []model.PropertyManager{}
	err := selectAll(ctx, s.DB, &managers, psql.Select(managerColumns...).From("property_manager").OrderBy("id"))
	return managers, err
}

func (s *Storage) GetPropertyManager(ctx context.Context, id int64) (*model.PropertyManager, error) {
	var m model.PropertyManager
	if err := get(ctx, s.DB, &m, psql.Select(managerColumns...).From("property_manager").Where(sq.Eq{"id": id})); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListPropertyManagersWithProperties loads every manager and its properties
// with one query per level.
func (s *Storage) ListPropertyManagersWithProperties(ctx context.Context) ([]model.PropertyManagerWithProperties, error) {
	managers, err := s.ListPropertyManagers(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(managers))
	for _, m := range managers {
		ids = append(ids, m.ID)
	}

	var properties []model.Property
	if len(ids) > 0 {
		q := psql.Select(propertyColumns...).From("property").
			Where(sq.Eq{"property_manager_id": ids}).
			OrderBy("id")
		if err := selectAll(ctx, s.DB, &properties, q); err != nil {
			return nil, err
		}
	}
	byManager := groupByOwner(properties, func(p model.Property) (int64, model.PropertyRef) {
		return p.PropertyManagerID, model.PropertyRef{ID: p.ID, Address: p.Address}
	})

	out := make([]model.PropertyManagerWithProperties, 0, len(managers))
	for _, m := range managers {
		refs := byManager[m.ID]
		if refs == nil {
			refs = []model.PropertyRef{}
		}
		out = append(out, model.PropertyManagerWithProperties{PropertyManager: m, Properties: refs})
	}
	return out, nil
}

func (s *Storage) CreatePropertyManager(ctx context.Context, in model.PropertyManagerInput) (*model.PropertyManager, error) {
	return createPropertyManager(ctx, s.DB, in)
}

func createPropertyManager(ctx context.Context, q sqlx.QueryerContext, in model.PropertyManagerInput) (*model.PropertyManager, error) {
	var m model.PropertyManager
	b := psql.Insert("property_manager").
		Columns("name", "phone", "email").
		Values(in.Name, in.Phone, in.Email).
		Suffix("RETURNING id, name, phone, email")
	if err := get(ctx, q, &m, b); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdatePropertyManager applies the supplied fields. An empty update returns the current row.
func (s *Storage) UpdatePropertyManager(ctx context.Context, id int64, up model.PropertyManagerUpdate) (*model.PropertyManager, error) {
	set := map[string]interface{}{}
	setOptional(set, "name", up.Name.Set, up.Name.Null, up.Name.Value)
	setOptional(set, "phone", up.Phone.Set, up.Phone.Null, up.Phone.Value)
	setOptional(set, "email", up.Email.Set, up.Email.Null, up.Email.Value)
	if len(set) == 0 {
		return s.GetPropertyManager(ctx, id)
	}

	var m model.PropertyManager
	b := psql.Update("property_manager").SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, phone, email")
	if err := get(ctx, s.DB, &m, b); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeletePropertyManager removes the manager; its properties, their tenancies
// and junction rows go with it through ON DELETE CASCADE.
func (s *Storage) DeletePropertyManager(ctx context.Context, id int64) (*model.PropertyManager, error) {
	var m model.PropertyManager
	b := psql.Delete("property_manager").Where(sq.Eq{"id": id}).Suffix("RETURNING id, name, phone, email")
	if err := get(ctx, s.DB, &m, b); err != nil {
		return nil, err
	}
	return &m, nil
}
