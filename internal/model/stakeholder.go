package model

import "time"

// Stakeholder is a user record associated with one or more projects.
// Records are owned by the identity platform; this service only reads them.
type Stakeholder struct {
	ID          string     `json:"id"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Recipient is a resolved (name, phone number) pair derived from a
// project's stakeholder list at dispatch time. Never persisted.
type Recipient struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}
