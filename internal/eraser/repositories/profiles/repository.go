package profiles

import (
	"context"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/models"
)

// VersionCursor is a stateful, paged enumeration over a user's profile
// versions. NextPage returns an empty page when the collection is exhausted.
type VersionCursor interface {
	NextPage(ctx context.Context) ([]*models.Profile, error)
}

type Repository interface {
	// Versions enumerates all profile versions for fiscalCode, oldest first.
	Versions(fiscalCode string) VersionCursor

	// DeleteVersion removes one profile version row. Deleting an already
	// deleted row is not an error.
	DeleteVersion(ctx context.Context, fiscalCode string, id string) error
}
