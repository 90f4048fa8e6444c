// internal/model/property_manager.go
package model

type PropertyManager struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone"`
	Email string `db:"email" json:"email"`
}

// PropertyManagerRef is the short form nested under a property.
type PropertyManagerRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type PropertyManagerWithProperties struct {
	PropertyManager
	Properties []PropertyRef `json:"properties"`
}

type PropertyManagerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type PropertyManagerUpdate struct {
	Name  Optional[string] `json:"name"`
	Phone Optional[string] `json:"phone"`
	Email Optional[string] `json:"email"`
}
