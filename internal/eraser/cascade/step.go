// Package cascade implements the ordered backup-then-delete engine for user
// data erasure: every record is archived to cold storage before it is purged
// from the live store, children are processed before their parents, and the
// first failure anywhere aborts all remaining work.
package cascade

import (
	"context"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/failure"
)

// backupThenDelete runs the two-phase unit for one record: the archive write
// first, and the live-store delete only after the write succeeded. When the
// archive fails, the delete is never attempted. When the delete fails after a
// successful archive, the record stays archived-but-not-deleted; a re-run
// overwrites the archive object and retries the delete.
func backupThenDelete[T any](
	ctx context.Context,
	item T,
	put func(ctx context.Context, item T) error,
	del func(ctx context.Context, item T) error,
) (T, *failure.Failure) {
	var zero T

	if err := put(ctx, item); err != nil {
		return zero, failure.BlobCreation(err)
	}
	if err := del(ctx, item); err != nil {
		return zero, failure.DocumentDelete(err)
	}
	return item, nil
}
