package http

import (
	"ujenzi-notify/internal/alert"
	"ujenzi-notify/internal/model"
	"ujenzi-notify/pkg/paginator"
	"ujenzi-notify/pkg/response"
)

type createAlertReq struct {
	ProjectID string `json:"project_id"`
	Category  string `json:"category"`
	Body      string `json:"body"`
}

func (r createAlertReq) toInput() alert.CreateAlertInput {
	return alert.CreateAlertInput{
		ProjectID: r.ProjectID,
		Category:  r.Category,
		Body:      r.Body,
	}
}

type dispatchUpdateReq struct {
	ProjectID string `json:"project_id"`
	Body      string `json:"body"`
}

func (r dispatchUpdateReq) toInput() alert.DispatchUpdateInput {
	return alert.DispatchUpdateInput{
		ProjectID: r.ProjectID,
		Body:      r.Body,
	}
}

type getReq struct {
	ProjectID string `form:"project_id"`
	Category  string `form:"category"`
	Page      int    `form:"page"`
	Limit     int64  `form:"limit"`
}

func (r getReq) toInput() alert.GetInput {
	return alert.GetInput{
		Filter: alert.Filter{
			ProjectID: r.ProjectID,
			Category:  r.Category,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type alertResp struct {
	ID           string            `json:"id"`
	ProjectID    string            `json:"project_id"`
	Category     string            `json:"category"`
	Body         string            `json:"body"`
	RecipientIDs []string          `json:"recipient_ids,omitempty"`
	IsRead       bool              `json:"is_read"`
	CreatedBy    string            `json:"created_by"`
	CreatedAt    response.DateTime `json:"created_at"`
}

func newAlertResp(a model.Alert) alertResp {
	return alertResp{
		ID:           a.ID,
		ProjectID:    a.ProjectID,
		Category:     a.Category,
		Body:         a.Body,
		RecipientIDs: a.RecipientIDs,
		IsRead:       a.IsRead,
		CreatedBy:    a.CreatedBy,
		CreatedAt:    response.DateTime(a.CreatedAt),
	}
}

type deliveryResp struct {
	State      string `json:"state"`
	AttemptID  string `json:"attempt_id,omitempty"`
	Recipients int    `json:"recipients"`
}

func newDeliveryResp(d alert.DeliveryResult) deliveryResp {
	return deliveryResp{
		State:      d.State,
		AttemptID:  d.AttemptID,
		Recipients: d.Recipients,
	}
}

type createAlertResp struct {
	Alert    alertResp    `json:"alert"`
	Delivery deliveryResp `json:"delivery"`
}

func newCreateAlertResp(o alert.CreateAlertOutput) createAlertResp {
	return createAlertResp{
		Alert:    newAlertResp(o.Alert),
		Delivery: newDeliveryResp(o.Delivery),
	}
}

type getResp struct {
	Items     []alertResp                 `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetResp(o alert.GetOutput) getResp {
	items := make([]alertResp, len(o.Alerts))
	for i, a := range o.Alerts {
		items[i] = newAlertResp(a)
	}
	return getResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}
