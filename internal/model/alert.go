package model

import "time"

// Alert categories. The category is immutable once the alert is created.
const (
	AlertCategoryInfo     = "info"
	AlertCategoryDelay    = "delay"
	AlertCategoryIncident = "incident"
)

// IsValidAlertCategory reports whether c is one of the known categories.
func IsValidAlertCategory(c string) bool {
	switch c {
	case AlertCategoryInfo, AlertCategoryDelay, AlertCategoryIncident:
		return true
	}
	return false
}

// Alert represents a notable project event created by an authorized actor.
// Only IsRead may change after creation; alerts are never deleted.
type Alert struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Category     string    `json:"category"`
	Body         string    `json:"body"`
	RecipientIDs []string  `json:"recipient_ids"`
	IsRead       bool      `json:"is_read"`
	CreatedBy    string    `json:"created_by"`
	CreatorRole  string    `json:"creator_role"`
	CreatedAt    time.Time `json:"created_at"`
}
