// internal/model/property.go
package model

// Property is managed by exactly one PropertyManager. The manager id is
// accepted on input but not rendered.
type Property struct {
	ID                int64  `db:"id" json:"id"`
	Address           string `db:"address" json:"address"`
	PropertyManagerID int64  `db:"property_manager_id" json:"-"`
}

type PropertyRef struct {
	ID      int64  `db:"id" json:"id"`
	Address string `db:"address" json:"address"`
}

type PropertyWithManager struct {
	Property
	PropertyManager *PropertyManagerRef `json:"property_manager"`
}

type PropertyInput struct {
	Address           string `json:"address"`
	PropertyManagerID int64  `json:"property_manager_id"`
}

type PropertyUpdate struct {
	Address           Optional[string] `json:"address"`
	PropertyManagerID Optional[int64]  `json:"property_manager_id"`
}
