// internal/model/link.go
package model

// TenantTenancy is a junction row between a tenant and a tenancy.
type TenantTenancy struct {
	ID        int64 `db:"id" json:"id"`
	Rank      *int  `db:"rank" json:"rank"`
	TenancyID int64 `db:"tenancy_id" json:"tenancy_id"`
	TenantID  int64 `db:"tenant_id" json:"tenant_id"`
}

// TenantSupportWorker is a junction row between a tenant and a support worker.
type TenantSupportWorker struct {
	ID              int64 `db:"id" json:"id"`
	Rank            *int  `db:"rank" json:"rank"`
	SupportWorkerID int64 `db:"support_worker_id" json:"support_worker_id"`
	TenantID        int64 `db:"tenant_id" json:"tenant_id"`
}

// LinkInput is the optional body of a link request.
type LinkInput struct {
	Rank *int `json:"rank"`
}
