// internal/model/tenant.go
package model

type Tenant struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	DateOfBirth Date    `db:"date_of_birth" json:"date_of_birth"`
	Phone       *string `db:"phone" json:"phone"`
	Email       *string `db:"email" json:"email"`
}

type TenantRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// TenantContact is the tenant view used by the nested listings.
type TenantContact struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Phone *string `db:"phone" json:"phone"`
	Email *string `db:"email" json:"email"`
}

type TenantWithTenancies struct {
	TenantContact
	Tenancies []Tenancy `json:"tenancies"`
}

type TenantWithSupportWorkers struct {
	TenantContact
	SupportWorkers []SupportWorkerRef `json:"support_workers"`
}

type TenantInput struct {
	Name        string  `json:"name"`
	DateOfBirth Date    `json:"date_of_birth"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
}

type TenantUpdate struct {
	Name        Optional[string] `json:"name"`
	DateOfBirth Optional[Date]   `json:"date_of_birth"`
	Phone       Optional[string] `json:"phone"`
	Email       Optional[string] `json:"email"`
}
