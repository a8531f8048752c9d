package cascade

import (
	"context"
	"time"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/archive"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/failure"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/messages"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/messagestatuses"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/profiles"
	"github.com/giuseppedipinto/io-functions-admin/internal/logging"
)

// Archiver is the cold-storage capability the cascades depend on.
type Archiver interface {
	Put(ctx context.Context, dest archive.Destination, name string, payload any) error
}

// Service runs one user-data erasure per invocation. The repositories and
// the archiver are long-lived, externally constructed, and shared across all
// steps of an invocation; the service keeps no mutable state between
// invocations, so a failed run can simply be re-invoked.
type Service struct {
	profiles    profiles.Repository
	messages    messages.Repository
	statuses    messagestatuses.Repository
	blobs       Archiver
	bucket      string
	concurrency int
	logger      logging.Logger

	now func() time.Time
}

func NewService(
	profileRepo profiles.Repository,
	messageRepo messages.Repository,
	statusRepo messagestatuses.Repository,
	blobs Archiver,
	bucket string,
	logger logging.Logger,
) *Service {
	return &Service{
		profiles:    profileRepo,
		messages:    messageRepo,
		statuses:    statusRepo,
		blobs:       blobs,
		bucket:      bucket,
		concurrency: 1,
		logger:      logger,
		now:         time.Now,
	}
}

// WithinPageConcurrency allows archive-then-delete units of one page to
// overlap. The default of 1 processes items strictly in order; higher values
// keep the all-or-nothing page semantics but a failing item no longer stops
// siblings already in flight.
func (s *Service) WithinPageConcurrency(n int) *Service {
	s.concurrency = n
	return s
}

// Success summarizes a fully completed erasure.
type Success struct {
	Messages        int
	MessageStatuses int
	ProfileVersions int
}

// Run erases all of the user's data: for every message, the status cascade
// then the message itself (children strictly before the parent), and only
// after every message succeeded, the profile versions. The first failure
// anywhere aborts all remaining steps and becomes the result; it is logged
// exactly once, here, before returning.
func (s *Service) Run(ctx context.Context, in Input) (*Success, *failure.Failure) {
	log := s.logger.With("request_id", in.UserDataDeleteRequestID)

	res, f := s.run(ctx, in)
	if f != nil {
		failure.Log(ctx, log, f)
		return nil, f
	}

	log.Info(ctx, "user data erased",
		"messages", res.Messages,
		"message_statuses", res.MessageStatuses,
		"profile_versions", res.ProfileVersions,
	)
	return res, nil
}

func (s *Service) run(ctx context.Context, in Input) (*Success, *failure.Failure) {
	if err := in.validate(); err != nil {
		return nil, failure.InvalidInput(err.Error())
	}

	dest := archive.Destination{
		Bucket: s.bucket,
		Folder: backupFolder(in.UserDataDeleteRequestID, s.now()),
	}

	msgs, err := s.messages.FindAll(ctx, in.FiscalCode)
	if err != nil {
		return nil, failure.Query("findMessages", err)
	}

	sum := &Success{}
	for _, m := range msgs {
		if f := s.eraseMessageContent(ctx, dest, m); f != nil {
			return nil, f
		}
		statuses, f := s.eraseMessageStatuses(ctx, dest, m.ID)
		if f != nil {
			return nil, f
		}
		sum.MessageStatuses += len(statuses)

		if f := s.eraseMessage(ctx, dest, m); f != nil {
			return nil, f
		}
		sum.Messages++
	}

	versions, f := s.eraseProfileVersions(ctx, dest, in.FiscalCode)
	if f != nil {
		return nil, f
	}
	sum.ProfileVersions = versions

	return sum, nil
}
