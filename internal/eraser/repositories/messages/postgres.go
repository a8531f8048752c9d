// Package messages provides the PostgreSQL-backed query layer for message
// records in the live store.
package messages

import (
	"context"
	"fmt"

	"github.com/giuseppedipinto/io-functions-admin/internal/dbx"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindAll(ctx context.Context, fiscalCode string) ([]*models.Message, error) {
	query := `
		SELECT id, fiscal_code, sender_service_id, created_at
		FROM messages
		WHERE fiscal_code=$1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, fiscalCode)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		var item models.Message
		if err := rows.Scan(&item.ID, &item.FiscalCode, &item.SenderServiceID, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, fiscalCode string, id string) error {
	query := `DELETE FROM messages WHERE fiscal_code=$1 AND id=$2`
	if _, err := r.db.ExecContext(ctx, query, fiscalCode, id); err != nil {
		return fmt.Errorf("delete message %s: %w", id, err)
	}
	return nil
}
