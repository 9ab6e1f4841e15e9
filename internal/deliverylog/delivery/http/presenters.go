package http

import (
	"ujenzi-notify/internal/deliverylog"
	"ujenzi-notify/internal/model"
	"ujenzi-notify/pkg/response"
)

type recentReq struct {
	ProjectID string `form:"project_id"`
	Limit     int    `form:"limit"`
}

func (r recentReq) toInput() deliverylog.RecentInput {
	return deliverylog.RecentInput{
		ProjectID: r.ProjectID,
		Limit:     r.Limit,
	}
}

type recipientStatusResp struct {
	Number     string `json:"number"`
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Cost       string `json:"cost,omitempty"`
	MessageID  string `json:"message_id,omitempty"`
}

type attemptResp struct {
	ID           string                `json:"id"`
	AlertID      *string               `json:"alert_id,omitempty"`
	Message      string                `json:"message"`
	Recipients   []string              `json:"recipients"`
	Status       string                `json:"status"`
	Statuses     []recipientStatusResp `json:"statuses,omitempty"`
	ErrorMessage *string               `json:"error_message,omitempty"`
	CreatedAt    response.DateTime     `json:"created_at"`
}

func newAttemptResp(a model.DeliveryAttempt) attemptResp {
	resp := attemptResp{
		ID:           a.ID,
		AlertID:      a.AlertID,
		Message:      a.Message,
		Recipients:   a.Recipients,
		Status:       a.Status,
		ErrorMessage: a.ErrorMessage,
		CreatedAt:    response.DateTime(a.CreatedAt),
	}
	for _, s := range a.Statuses {
		resp.Statuses = append(resp.Statuses, recipientStatusResp{
			Number:     s.Number,
			Status:     s.Status,
			StatusCode: s.StatusCode,
			Cost:       s.Cost,
			MessageID:  s.MessageID,
		})
	}
	return resp
}

type recentResp struct {
	Items []attemptResp `json:"items"`
}

func newRecentResp(o deliverylog.RecentOutput) recentResp {
	items := make([]attemptResp, len(o.Attempts))
	for i, a := range o.Attempts {
		items[i] = newAttemptResp(a)
	}
	return recentResp{Items: items}
}
