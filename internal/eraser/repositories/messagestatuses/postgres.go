// Package messagestatuses provides the PostgreSQL-backed query layer for
// message status version records in the live store.
package messagestatuses

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

func NewPostgresRepository(db dbx.DBTX, pageSize int) *PostgresRepository {
	return &PostgresRepository{db: db, pageSize: pageSize}
}

func (r *PostgresRepository) Versions(messageID string) VersionCursor {
	return &versionCursor{db: r.db, messageID: messageID, pageSize: r.pageSize, after: -1}
}

func (r *PostgresRepository) DeleteVersion(ctx context.Context, messageID string, id string) error {
	query := `DELETE FROM message_statuses WHERE message_id=$1 AND id=$2`
	if _, err := r.db.ExecContext(ctx, query, messageID, id); err != nil {
		return fmt.Errorf("delete message status %s: %w", id, err)
	}
	return nil
}

type versionCursor struct {
	db        dbx.DBTX
	messageID string
	pageSize  int
	after     int64
}

func (c *versionCursor) NextPage(ctx context.Context) ([]*models.MessageStatus, error) {
	query := `
		SELECT message_id, id, version, status, updated_at
		FROM message_statuses
		WHERE message_id=$1 AND version>$2
		ORDER BY version
		LIMIT $3
	`
	rows, err := c.db.QueryContext(ctx, query, c.messageID, c.after, c.pageSize)
	if err != nil {
		return nil, fmt.Errorf("select message status versions: %w", err)
	}
	defer rows.Close()

	var page []*models.MessageStatus
	for rows.Next() {
		var item models.MessageStatus
		if err := rows.Scan(&item.MessageID, &item.ID, &item.Version, &item.Status, &item.UpdatedAt); err != nil {
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
