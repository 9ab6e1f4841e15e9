package repository

import "ujenzi-notify/pkg/paginator"

// Filter contains filtering options for project queries.
type Filter struct {
	SiteCode string
	Status   string
}

// GetOptions contains options for paginated project listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
