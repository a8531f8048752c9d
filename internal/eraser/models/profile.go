// Package models defines the user-data records read from the live store
// during an erasure. The eraser never constructs or mutates these records;
// it only archives and deletes previously persisted rows.
package models

import "time"

// Profile is one point-in-time snapshot of a user profile. A user has
// multiple versions; every version is archived and deleted individually.
type Profile struct {
	FiscalCode         string    `json:"fiscalCode"`
	ID                 string    `json:"id"`
	Version            int64     `json:"version"`
	Email              string    `json:"email,omitempty"`
	IsInboxEnabled     bool      `json:"isInboxEnabled"`
	IsWebhookEnabled   bool      `json:"isWebhookEnabled"`
	AcceptedTosVersion int64     `json:"acceptedTosVersion,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}
