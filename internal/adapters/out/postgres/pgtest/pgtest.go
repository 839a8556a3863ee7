// Package pgtest starts a disposable PostgreSQL for integration tests and
// applies the embedded schema to it.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"littlelemon/internal/adapters/out/postgres/migrations"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Tables lists every application table in truncation order.
var Tables = []string{
	"outbox_events",
	"order_items",
	"orders",
	"cart_lines",
	"menu_items",
	"categories",
	"user_roles",
	"users",
}

type Database struct {
	Container *postgres.PostgresContainer
	DSN       string
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, migrates it and opens a GORM connection with
// error translation enabled.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = migrations.Up(dsn); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DSN: dsn, DB: db}, nil
}

// Truncate empties every application table.
func (d *Database) Truncate() error {
	for _, table := range Tables {
		if err := d.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// SeedUser inserts a user holding the given role names.
func (d *Database) SeedUser(id uuid.UUID, username string, roles ...string) error {
	if err := d.DB.Exec("INSERT INTO users (id, username) VALUES (?, ?)", id, username).Error; err != nil {
		return err
	}
	for _, role := range roles {
		if err := d.DB.Exec("INSERT INTO user_roles (user_id, role) VALUES (?, ?)", id, role).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedMenuItem inserts a category (if absent) and a menu item priced at price.
func (d *Database) SeedMenuItem(id uuid.UUID, title, price string) error {
	categoryID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("pgtest-category"))
	if err := d.DB.Exec(
		"INSERT INTO categories (id, slug, title) VALUES (?, 'seed', 'Seed') ON CONFLICT DO NOTHING",
		categoryID,
	).Error; err != nil {
		return err
	}
	return d.DB.Exec(
		"INSERT INTO menu_items (id, title, price, featured, category_id) VALUES (?, ?, ?::numeric, false, ?)",
		id, title, price, categoryID,
	).Error
}
