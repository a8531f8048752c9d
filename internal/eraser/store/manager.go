package store

import (
	"context"
	"database/sql"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/messages"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/messagestatuses"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/profiles"
)

// Manager owns the live-store connection and hands out the per-entity
// repositories the erasure cascades depend on.
type Manager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Profiles() profiles.Repository
	Messages() messages.Repository
	MessageStatuses() messagestatuses.Repository
	Close() error
}
