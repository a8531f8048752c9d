package models

import "time"

// Notification and NotificationStatus are part of the live-store schema but
// are not yet exercised by the erasure cascade. They are kept here so the
// schema and a future notification cascade share one definition.
type Notification struct {
	ID         string    `json:"id"`
	MessageID  string    `json:"messageId"`
	FiscalCode string    `json:"fiscalCode"`
	CreatedAt  time.Time `json:"createdAt"`
}

type NotificationStatus struct {
	NotificationID string    `json:"notificationId"`
	ID             string    `json:"id"`
	Version        int64     `json:"version"`
	Channel        string    `json:"channel"`
	Status         string    `json:"status"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
