package deliverylog

import "ujenzi-notify/internal/model"

// DefaultRecentLimit bounds the recent-updates feed when the caller does
// not ask for a specific size.
const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

// RecentInput filters the recent delivery attempts feed.
type RecentInput struct {
	ProjectID string
	Limit     int
}

// RecentOutput carries the newest delivery attempts, newest first.
type RecentOutput struct {
	Attempts []model.DeliveryAttempt
}
