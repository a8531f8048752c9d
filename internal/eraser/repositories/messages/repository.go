package messages

import (
	"context"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/models"
)

type Repository interface {
	// FindAll returns every message addressed to fiscalCode in the store's
	// natural enumeration order.
	FindAll(ctx context.Context, fiscalCode string) ([]*models.Message, error)

	// Delete removes one message row. Deleting an already deleted row is not
	// an error.
	Delete(ctx context.Context, fiscalCode string, id string) error
}
