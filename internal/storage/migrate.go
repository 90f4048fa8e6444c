package storage

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type migrateLogger struct {
	log logrus.FieldLogger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

func (l migrateLogger) Verbose() bool {
	return false
}

func newMigrate(databaseURL string, log logrus.FieldLogger) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	m.Log = migrateLogger{log: log}
	return m, nil
}

// CreateSchema applies every pending migration. databaseURL must be a
// postgres:// URL.
func CreateSchema(databaseURL string, log logrus.FieldLogger) error {
	m, err := newMigrate(databaseURL, log)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	version, dirty, _ := m.Version()
	log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("schema up to date")
	return nil
}

// DropSchema rolls back every migration, removing all tables.
func DropSchema(databaseURL string, log logrus.FieldLogger) error {
	m, err := newMigrate(databaseURL, log)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	log.Info("schema dropped")
	return nil
}
