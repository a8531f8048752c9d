// Package failure defines the closed set of outcomes an erasure activity can
// fail with, and the boundary logging adapter keyed by failure kind.
//
// The set is closed: consumers switch over every Kind and treat an unknown
// value as an unreachable state. Adding a kind is a breaking change for all
// call sites.
package failure

import (
	"context"
	"fmt"

	"github.com/giuseppedipinto/io-functions-admin/internal/logging"
)

// Kind tags one member of the failure union.
type Kind string

const (
	KindInvalidInput   Kind = "INVALID_INPUT_FAILURE"
	KindQuery          Kind = "QUERY_FAILURE"
	KindBlobCreation   Kind = "BLOB_FAILURE"
	KindDocumentDelete Kind = "DELETE_FAILURE"

	// KindUserNotFound is reserved: the documented flow never raises it, but
	// it is part of the union so consumers already handle it.
	KindUserNotFound Kind = "USER_NOT_FOUND_FAILURE"
)

// Failure is a terminal activity outcome. The surrounding orchestrator owns
// retry policy; nothing in this package retries.
type Failure struct {
	Kind   Kind
	Reason string
	// Query names the live-store operation that failed. Set only for KindQuery.
	Query string
}

func (f *Failure) Error() string {
	if f.Query != "" {
		return fmt.Sprintf("%s (%s): %s", f.Kind, f.Query, f.Reason)
	}
	if f.Reason != "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Reason)
	}
	return string(f.Kind)
}

// InvalidInput reports a malformed activity input. Not retryable without a
// corrected input.
func InvalidInput(reason string) *Failure {
	return &Failure{Kind: KindInvalidInput, Reason: reason}
}

// Query reports a failed read or enumeration against the live store.
func Query(query string, err error) *Failure {
	return &Failure{Kind: KindQuery, Query: query, Reason: err.Error()}
}

// BlobCreation reports a failed archive write. Retryable: archive writes are
// idempotent overwrites.
func BlobCreation(err error) *Failure {
	return &Failure{Kind: KindBlobCreation, Reason: err.Error()}
}

// DocumentDelete reports a failed live-store delete after a successful
// archive write. Retryable: the archive object already exists.
func DocumentDelete(err error) *Failure {
	return &Failure{Kind: KindDocumentDelete, Reason: err.Error()}
}

// UserNotFound reports that the target user does not exist.
func UserNotFound() *Failure {
	return &Failure{Kind: KindUserNotFound}
}

// Log writes exactly one entry for f, keyed by its kind. It is called once,
// at the boundary where the failure is returned to the caller, never at
// intermediate steps.
//
// The switch must stay exhaustive over the union; an unknown kind is an
// unreachable state and panics.
func Log(ctx context.Context, log logging.Logger, f *Failure) {
	switch f.Kind {
	case KindInvalidInput:
		log.Error(ctx, "invalid activity input", "reason", f.Reason)
	case KindQuery:
		log.Error(ctx, "live-store query failed", "query", f.Query, "reason", f.Reason)
	case KindBlobCreation:
		log.Error(ctx, "archive write failed", "reason", f.Reason)
	case KindDocumentDelete:
		log.Error(ctx, "live-store delete failed", "reason", f.Reason)
	case KindUserNotFound:
		log.Error(ctx, "user not found")
	default:
		panic(fmt.Sprintf("unhandled failure kind: %q", f.Kind))
	}
}
