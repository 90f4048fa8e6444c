package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"property-management/internal/model"
)

// SeedCounts reports how many rows Seed inserted per table.
type SeedCounts struct {
	PropertyManagers     int
	Properties           int
	SupportWorkers       int
	Tenancies            int
	Tenants              int
	TenantTenancies      int
	TenantSupportWorkers int
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// Seed inserts the fixture data set in a single transaction.
func (s *Storage) Seed(ctx context.Context) (SeedCounts, error) {
	var counts SeedCounts
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		managers := []model.PropertyManagerInput{
			{Name: "Janice Justice", Phone: "0400001001", Email: "JJ1@CPM.org"},
			{Name: "Rita Philbara", Phone: "0400002002", Email: "RP2@CPM.org"},
			{Name: "Angel Custers", Phone: "0400003003", Email: "AC3@CPM.org"},
		}
		managerIDs := make([]int64, 0, len(managers))
		for _, in := range managers {
			pm, err := createPropertyManager(ctx, tx, in)
			if err != nil {
				return fmt.Errorf("seed property manager %q: %w", in.Name, err)
			}
			managerIDs = append(managerIDs, pm.ID)
		}
		counts.PropertyManagers = len(managerIDs)

		addresses := []string{
			"42 Dandelion Road, Mildura, Vic, 3500",
			"56 Rubarb Court, Merbein, Vic, 3501",
			"100 Pterodactyl Close, Swan Hill, Vic, 3585",
		}
		propertyIDs := make([]int64, 0, len(addresses))
		for i, addr := range addresses {
			p, err := createProperty(ctx, tx, model.PropertyInput{Address: addr, PropertyManagerID: managerIDs[i]})
			if err != nil {
				return fmt.Errorf("seed property %q: %w", addr, err)
			}
			propertyIDs = append(propertyIDs, p.ID)
		}
		counts.Properties = len(propertyIDs)

		workers := []model.SupportWorkerInput{
			{Name: "Sue Slime", Phone: strPtr("0412345678"), Email: "SS@help.org"},
			{Name: "Janis Joplin", Phone: strPtr("0487654321"), Email: "JJ@MH.org"},
			{Name: "Peter Paulson", Phone: strPtr("0487654321"), Email: "PP@AOD.org"},
		}
		workerIDs := make([]int64, 0, len(workers))
		for _, in := range workers {
			w, err := createSupportWorker(ctx, tx, in)
			if err != nil {
				return fmt.Errorf("seed support worker %q: %w", in.Name, err)
			}
			workerIDs = append(workerIDs, w.ID)
		}
		counts.SupportWorkers = len(workerIDs)

		endDate := model.NewDate(2025, time.November, 28)
		tenancies := []model.TenancyInput{
			{StartDate: model.NewDate(2025, time.December, 5), Status: "Sign-Up", PropertyID: propertyIDs[2]},
			{StartDate: model.NewDate(2006, time.October, 9), EndDate: &endDate, Status: "Vacant", PropertyID: propertyIDs[1]},
			{StartDate: model.NewDate(2019, time.May, 1), Status: "Tenanted", PropertyID: propertyIDs[0]},
		}
		tenancyIDs := make([]int64, 0, len(tenancies))
		for _, in := range tenancies {
			t, err := createTenancy(ctx, tx, in)
			if err != nil {
				return fmt.Errorf("seed tenancy: %w", err)
			}
			tenancyIDs = append(tenancyIDs, t.ID)
		}
		counts.Tenancies = len(tenancyIDs)

		tenants := []model.TenantInput{
			{Name: "James Arquette", DateOfBirth: model.NewDate(1973, time.June, 25), Phone: strPtr("0417678900"), Email: strPtr("banana-bicycle@hotmail.com")},
			{Name: "June Harris", DateOfBirth: model.NewDate(1966, time.March, 12), Phone: strPtr("0400345678"), Email: strPtr("harrij@yahoo.com")},
			{Name: "Paula Deakin", DateOfBirth: model.NewDate(1990, time.July, 14), Phone: strPtr("0438987654"), Email: strPtr("jupiter.sun@gmail.com")},
		}
		tenantIDs := make([]int64, 0, len(tenants))
		for _, in := range tenants {
			t, err := createTenant(ctx, tx, in)
			if err != nil {
				return fmt.Errorf("seed tenant %q: %w", in.Name, err)
			}
			tenantIDs = append(tenantIDs, t.ID)
		}
		counts.Tenants = len(tenantIDs)

		// tenant i is linked to tenancy i and support worker i with rank i+1
		for i, tenantID := range tenantIDs {
			if _, err := insertTenantTenancy(ctx, tx, tenantID, tenancyIDs[i], intPtr(i+1)); err != nil {
				return fmt.Errorf("seed tenant tenancy: %w", err)
			}
			counts.TenantTenancies++
			if _, err := insertTenantSupportWorker(ctx, tx, tenantID, workerIDs[i], intPtr(i+1)); err != nil {
				return fmt.Errorf("seed tenant support worker: %w", err)
			}
			counts.TenantSupportWorkers++
		}
		return nil
	})
	if err != nil {
		return SeedCounts{}, err
	}
	return counts, nil
}
