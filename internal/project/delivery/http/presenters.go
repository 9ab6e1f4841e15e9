package http

import (
	"ujenzi-notify/internal/model"
	"ujenzi-notify/internal/project"
	"ujenzi-notify/pkg/paginator"
)

type getReq struct {
	SiteCode string `form:"site_code"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	Limit    int64  `form:"limit"`
}

func (r getReq) toInput() project.GetInput {
	return project.GetInput{
		Filter: project.Filter{
			SiteCode: r.SiteCode,
			Status:   r.Status,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type projectResp struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SiteCode       string   `json:"site_code"`
	Status         string   `json:"status"`
	Location       string   `json:"location,omitempty"`
	StakeholderIDs []string `json:"stakeholder_ids,omitempty"`
}

func newProjectResp(p model.Project) projectResp {
	return projectResp{
		ID:             p.ID,
		Name:           p.Name,
		SiteCode:       p.SiteCode,
		Status:         p.Status,
		Location:       p.Location,
		StakeholderIDs: p.StakeholderIDs,
	}
}

type getResp struct {
	Items     []projectResp               `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetResp(o project.GetOutput) getResp {
	items := make([]projectResp, len(o.Projects))
	for i, p := range o.Projects {
		items[i] = newProjectResp(p)
	}
	return getResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}
