// internal/model/support_worker.go
package model

type SupportWorker struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Phone *string `db:"phone" json:"phone"`
	Email string  `db:"email" json:"email"`
}

type SupportWorkerRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type SupportWorkerWithTenants struct {
	SupportWorker
	Tenants []TenantRef `json:"tenants"`
}

type SupportWorkerInput struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Email string  `json:"email"`
}

type SupportWorkerUpdate struct {
	Name  Optional[string] `json:"name"`
	Phone Optional[string] `json:"phone"`
	Email Optional[string] `json:"email"`
}
