package repository

import (
	"encoding/json"

	"ujenzi-notify/internal/model"
)

// CreateOptions contains the fields of a new delivery attempt. AlertID is
// nil for ad-hoc status updates and inbound relay sends.
type CreateOptions struct {
	AlertID      *string
	Message      string
	Recipients   []string
	Status       string
	Statuses     []model.RecipientStatus
	ErrorMessage *string
	RawResponse  json.RawMessage
}

// RecentOptions filters the recent delivery attempts query.
type RecentOptions struct {
	AlertID   string
	ProjectID string
	Limit     int
}
