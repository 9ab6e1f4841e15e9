package model

import (
	"encoding/json"
	"time"
)

// Delivery attempt statuses.
const (
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusFailed    = "failed"
)

// RecipientStatus is the gateway's per-recipient acknowledgment.
type RecipientStatus struct {
	Number     string `json:"number"`
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Cost       string `json:"cost"`
	MessageID  string `json:"message_id"`
}

// DeliveryAttempt records one outbound send operation. Attempts are
// append-only and immutable once written; they are kept for audit and for
// the dashboard's recent-updates views. AlertID is nil for ad-hoc status
// updates dispatched outside the Alert entity.
type DeliveryAttempt struct {
	ID           string            `json:"id"`
	AlertID      *string           `json:"alert_id,omitempty"`
	Message      string            `json:"message"`
	Recipients   []string          `json:"recipients"`
	Status       string            `json:"status"`
	Statuses     []RecipientStatus `json:"statuses,omitempty"`
	ErrorMessage *string           `json:"error_message,omitempty"`
	RawResponse  json.RawMessage   `json:"raw_response,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
