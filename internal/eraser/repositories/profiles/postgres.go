// Package profiles provides the PostgreSQL-backed query layer for profile
// version records in the live store.
package profiles

import (
	"context"
	"fmt"

	"github.com/giuseppedipinto/io-functions-admin/internal/dbx"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db       dbx.DBTX
	pageSize int
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
// pageSize bounds how many versions one cursor page holds.
func NewPostgresRepository(db dbx.DBTX, pageSize int) *PostgresRepository {
	return &PostgresRepository{db: db, pageSize: pageSize}
}

func (r *PostgresRepository) Versions(fiscalCode string) VersionCursor {
	return &versionCursor{db: r.db, fiscalCode: fiscalCode, pageSize: r.pageSize, after: -1}
}

func (r *PostgresRepository) DeleteVersion(ctx context.Context, fiscalCode string, id string) error {
	query := `DELETE FROM profiles WHERE fiscal_code=$1 AND id=$2`
	// Zero rows affected means the row is already gone, which a re-run of the
	// activity treats as satisfied.
	if _, err := r.db.ExecContext(ctx, query, fiscalCode, id); err != nil {
		return fmt.Errorf("delete profile version %s: %w", id, err)
	}
	return nil
}

// versionCursor pages through profile versions with a keyset on version,
// so memory stays bounded to one page regardless of how many versions exist.
type versionCursor struct {
	db         dbx.DBTX
	fiscalCode string
	pageSize   int
	after      int64
}

func (c *versionCursor) NextPage(ctx context.Context) ([]*models.Profile, error) {
	query := `
		SELECT fiscal_code, id, version, email, is_inbox_enabled, is_webhook_enabled, accepted_tos_version, created_at
		FROM profiles
		WHERE fiscal_code=$1 AND version>$2
		ORDER BY version
		LIMIT $3
	`
	rows, err := c.db.QueryContext(ctx, query, c.fiscalCode, c.after, c.pageSize)
	if err != nil {
		return nil, fmt.Errorf("select profile versions: %w", err)
	}
	defer rows.Close()

	var page []*models.Profile
	for rows.Next() {
		var item models.Profile
		if err := rows.Scan(
			&item.FiscalCode, &item.ID, &item.Version, &item.Email,
			&item.IsInboxEnabled, &item.IsWebhookEnabled, &item.AcceptedTosVersion, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		page = append(page, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if n := len(page); n > 0 {
		c.after = page[n-1].Version
	}
	return page, nil
}
