package messagestatuses

import (
	"context"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/models"
)

// VersionCursor is a stateful, paged enumeration over a message's status
// versions. NextPage returns an empty page when the collection is exhausted.
type VersionCursor interface {
	NextPage(ctx context.Context) ([]*models.MessageStatus, error)
}

type Repository interface {
	// Versions enumerates all status versions for messageID, oldest first.
	Versions(messageID string) VersionCursor

	// DeleteVersion removes one status version row. Deleting an already
	// deleted row is not an error.
	DeleteVersion(ctx context.Context, messageID string, id string) error
}
