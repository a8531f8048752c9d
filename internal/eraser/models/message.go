package models

import "time"

// Message is one message sent to a user. Messages are not versioned in this
// workflow; each id has at most one current representation. The body content
// lives in a separate content store handled by its own (currently stubbed)
// cascade.
type Message struct {
	ID              string    `json:"id"`
	FiscalCode      string    `json:"fiscalCode"`
	SenderServiceID string    `json:"senderServiceId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// MessageStatus is one point-in-time status snapshot for a message.
// A message accumulates multiple status versions over its lifetime.
type MessageStatus struct {
	MessageID string    `json:"messageId"`
	ID        string    `json:"id"`
	Version   int64     `json:"version"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}
