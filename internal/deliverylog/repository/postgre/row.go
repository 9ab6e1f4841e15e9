package postgre

import (
	"encoding/json"

	"ujenzi-notify/internal/model"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
)

// attemptRow is the delivery_attempts table row, bound through the
// SQLBoiler runtime.
type attemptRow struct {
	ID           string            `boil:"id"`
	AlertID      null.String       `boil:"alert_id"`
	Message      string            `boil:"message"`
	Recipients   types.StringArray `boil:"recipients"`
	Status       string            `boil:"status"`
	Statuses     null.JSON         `boil:"recipient_statuses"`
	ErrorMessage null.String       `boil:"error_message"`
	RawResponse  null.JSON         `boil:"raw_response"`
	CreatedAt    null.Time         `boil:"created_at"`
}

func (r *attemptRow) toModel() model.DeliveryAttempt {
	a := model.DeliveryAttempt{
		ID:         r.ID,
		Message:    r.Message,
		Recipients: r.Recipients,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt.Time,
	}
	if r.AlertID.Valid {
		id := r.AlertID.String
		a.AlertID = &id
	}
	if r.ErrorMessage.Valid {
		msg := r.ErrorMessage.String
		a.ErrorMessage = &msg
	}
	if r.Statuses.Valid {
		// A row written by this service always holds a valid status array;
		// ignore rows that predate the current shape.
		_ = json.Unmarshal(r.Statuses.JSON, &a.Statuses)
	}
	if r.RawResponse.Valid {
		a.RawResponse = json.RawMessage(r.RawResponse.JSON)
	}
	return a
}
