package model

import "time"

// Project statuses as stored in the projects table.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusOnHold     = "on_hold"
)

// Project represents a construction project being monitored.
type Project struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SiteCode       string     `json:"site_code"`
	Status         string     `json:"status"`
	Location       string     `json:"location"`
	StakeholderIDs []string   `json:"stakeholder_ids"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}
