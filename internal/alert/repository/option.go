package repository

import "ujenzi-notify/pkg/paginator"

// CreateOptions contains the fields of a new alert record.
type CreateOptions struct {
	ProjectID    string
	Category     string
	Body         string
	RecipientIDs []string
	CreatedBy    string
	CreatorRole  string
}

// Filter contains filtering options for alert queries.
type Filter struct {
	ProjectID string
	Category  string
}

// GetOptions contains options for paginated alert listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
