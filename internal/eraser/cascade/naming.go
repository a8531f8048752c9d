package cascade

import (
	"fmt"
	"time"
)

// Archive object names are deterministic per (entity type, id, version), so
// re-running a request overwrites the same objects instead of duplicating
// them.

func profileBlobName(version int64) string {
	return fmt.Sprintf("profile--%d.json", version)
}

func messageStatusBlobName(id string, version int64) string {
	return fmt.Sprintf("message-status--%s--%d.json", id, version)
}

func messageBlobName(id string) string {
	return fmt.Sprintf("message--%s.json", id)
}

// backupFolder scopes all of one request's objects under a folder derived
// from the request id and the processing timestamp.
func backupFolder(requestID string, at time.Time) string {
	return fmt.Sprintf("%s-%d", requestID, at.UnixMilli())
}
