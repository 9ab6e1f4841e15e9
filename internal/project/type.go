package project

import (
	"ujenzi-notify/internal/model"
	"ujenzi-notify/pkg/paginator"
)

type Filter struct {
	SiteCode string
	Status   string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Projects  []model.Project
	Paginator paginator.Paginator
}
