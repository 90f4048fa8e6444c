package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"property-management/internal/logger"
	"property-management/internal/storage"
)

func newDBCommand(load configLoader) *cobra.Command {
	base := &cobra.Command{
		Use:   "db",
		Short: "Manage the database schema and fixture data",
	}

	requireURL := func() (string, error) {
		cfg, err := load()
		if err != nil {
			return "", err
		}
		if cfg.Database.URL == "" {
			return "", errors.New("database url is required (DATABASE_URL)")
		}
		return cfg.Database.URL, nil
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Apply all schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := requireURL()
			if err != nil {
				return err
			}
			if err := storage.CreateSchema(url, logger.Default()); err != nil {
				return err
			}
			logger.Default().Info("database schema created")
			return nil
		},
	}

	drop := &cobra.Command{
		Use:   "drop",
		Short: "Roll back all schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := requireURL()
			if err != nil {
				return err
			}
			if err := storage.DropSchema(url, logger.Default()); err != nil {
				return err
			}
			logger.Default().Info("database schema dropped")
			return nil
		},
	}

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Insert the fixture data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := requireURL()
			if err != nil {
				return err
			}
			db, err := storage.NewStorage(url)
			if err != nil {
				return err
			}
			defer db.Close()

			counts, err := db.Seed(cmd.Context())
			if err != nil {
				return err
			}
			logger.Default().WithFields(logrus.Fields{
				"propertyManagers":     counts.PropertyManagers,
				"properties":           counts.Properties,
				"supportWorkers":       counts.SupportWorkers,
				"tenancies":            counts.Tenancies,
				"tenants":              counts.Tenants,
				"tenantTenancies":      counts.TenantTenancies,
				"tenantSupportWorkers": counts.TenantSupportWorkers,
			}).Info("database seeded")
			return nil
		},
	}

	base.AddCommand(create, drop, seed)
	return base
}
