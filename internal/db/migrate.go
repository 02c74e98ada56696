package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies every pending up migration for the driver's dialect.
func Migrate(gdb *gorm.DB, driver string) error {
	m, err := newMigrator(gdb, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Reset drops every table and view and recreates the schema from scratch.
func Reset(gdb *gorm.DB, driver string) error {
	m, err := newMigrator(gdb, driver)
	if err != nil {
		return err
	}
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// newMigrator is never closed: closing it would close the pool shared with GORM.
func newMigrator(gdb *gorm.DB, driver string) (*migrate.Migrate, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("migration source %s: %w", driver, err)
	}

	var target database.Driver
	switch driver {
	case DriverPostgres:
		target, err = migratepg.WithInstance(sqlDB, &migratepg.Config{})
	case DriverMySQL:
		target, err = migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	case DriverSQLite:
		target, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("migration driver %s: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return nil, fmt.Errorf("migrator: %w", err)
	}
	return m, nil
}
