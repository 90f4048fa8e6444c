// internal/model/tenancy.go
package model

// Tenancy is a time-bounded occupancy of one Property. An open tenancy has
// no end date.
type Tenancy struct {
	ID         int64  `db:"id" json:"id"`
	StartDate  Date   `db:"start_date" json:"start_date"`
	EndDate    *Date  `db:"end_date" json:"end_date"`
	Status     string `db:"tenancy_status" json:"tenancy_status"`
	PropertyID int64  `db:"property_id" json:"-"`
}

// ValidRange reports whether the tenancy does not end before it starts.
func (t *Tenancy) ValidRange() bool {
	return t.EndDate == nil || !t.EndDate.Before(t.StartDate.Time)
}

type TenancyWithProperty struct {
	Tenancy
	Property *PropertyRef `json:"property"`
}

type TenancyWithTenants struct {
	Tenancy
	Tenants []TenantRef `json:"tenants"`
}

type TenancyInput struct {
	StartDate  Date   `json:"start_date"`
	EndDate    *Date  `json:"end_date"`
	Status     string `json:"tenancy_status"`
	PropertyID int64  `json:"property_id"`
}

type TenancyUpdate struct {
	StartDate  Optional[Date]   `json:"start_date"`
	EndDate    Optional[Date]   `json:"end_date"`
	Status     Optional[string] `json:"tenancy_status"`
	PropertyID Optional[int64]  `json:"property_id"`
}

// Apply merges the supplied fields into t.
func (u TenancyUpdate) Apply(t *Tenancy) {
	u.StartDate.Apply(&t.StartDate)
	u.EndDate.ApplyPtr(&t.EndDate)
	u.Status.Apply(&t.Status)
	u.PropertyID.Apply(&t.PropertyID)
}

// TenancyFilter narrows a tenancy search. Zero values are ignored.
type TenancyFilter struct {
	Status    string
	StartFrom *Date
	EndBy     *Date
}
