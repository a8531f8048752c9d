package cascade

import (
	"context"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/archive"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/failure"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/models"
)

// eraseProfileVersions backs up and deletes every profile version of the
// user. Returns how many versions were processed.
func (s *Service) eraseProfileVersions(ctx context.Context, dest archive.Destination, fiscalCode string) (int, *failure.Failure) {
	step := func(ctx context.Context, p *models.Profile) (*models.Profile, *failure.Failure) {
		return backupThenDelete(ctx, p,
			func(ctx context.Context, p *models.Profile) error {
				return s.blobs.Put(ctx, dest, profileBlobName(p.Version), p)
			},
			func(ctx context.Context, p *models.Profile) error {
				return s.profiles.DeleteVersion(ctx, p.FiscalCode, p.ID)
			},
		)
	}

	done, f := processAll(ctx, s.profiles.Versions(fiscalCode), "profileVersions", s.concurrency, step)
	if f != nil {
		return 0, f
	}
	return len(done), nil
}

// eraseMessageStatuses backs up and deletes every status version of one
// message, returning the processed records.
func (s *Service) eraseMessageStatuses(ctx context.Context, dest archive.Destination, messageID string) ([]*models.MessageStatus, *failure.Failure) {
	step := func(ctx context.Context, st *models.MessageStatus) (*models.MessageStatus, *failure.Failure) {
		return backupThenDelete(ctx, st,
			func(ctx context.Context, st *models.MessageStatus) error {
				return s.blobs.Put(ctx, dest, messageStatusBlobName(st.ID, st.Version), st)
			},
			func(ctx context.Context, st *models.MessageStatus) error {
				return s.statuses.DeleteVersion(ctx, st.MessageID, st.ID)
			},
		)
	}

	return processAll(ctx, s.statuses.Versions(messageID), "messageStatusVersions", s.concurrency, step)
}

// eraseMessage backs up and deletes one message record. Messages are not
// versioned here, so no paging is involved.
func (s *Service) eraseMessage(ctx context.Context, dest archive.Destination, m *models.Message) *failure.Failure {
	_, f := backupThenDelete(ctx, m,
		func(ctx context.Context, m *models.Message) error {
			return s.blobs.Put(ctx, dest, messageBlobName(m.ID), m)
		},
		func(ctx context.Context, m *models.Message) error {
			return s.messages.Delete(ctx, m.FiscalCode, m.ID)
		},
	)
	return f
}

// eraseMessageContent is reserved for archiving message body content. The
// content store is not wired into this workflow yet, so the step always
// succeeds without touching anything.
func (s *Service) eraseMessageContent(ctx context.Context, dest archive.Destination, m *models.Message) *failure.Failure {
	return nil
}
