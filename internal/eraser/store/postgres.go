// Package store wires the PostgreSQL live store: connection, schema
// migrations, and repository construction.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/migrations"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/messages"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/messagestatuses"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/profiles"
)

type PostgresManager struct {
	db       *sql.DB
	profiles *profiles.PostgresRepository
	messages *messages.PostgresRepository
	statuses *messagestatuses.PostgresRepository
}

// NewPostgresManager opens the live store via the pgx stdlib driver, builds
// the repositories and applies pending migrations. pageSize bounds the page
// length of the version cursors.
func NewPostgresManager(ctx context.Context, dsn string, pageSize int) (Manager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:       db,
		profiles: profiles.NewPostgresRepository(db, pageSize),
		messages: messages.NewPostgresRepository(db),
		statuses: messagestatuses.NewPostgresRepository(db, pageSize),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Profiles() profiles.Repository {
	return m.profiles
}

func (m *PostgresManager) Messages() messages.Repository {
	return m.messages
}

func (m *PostgresManager) MessageStatuses() messagestatuses.Repository {
	return m.statuses
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
