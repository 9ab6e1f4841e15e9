package postgre

import (
	"ujenzi-notify/internal/model"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
)

// alertRow is the alerts table row, bound through the SQLBoiler runtime.
type alertRow struct {
	ID           string            `boil:"id"`
	ProjectID    string            `boil:"project_id"`
	Category     string            `boil:"category"`
	Body         string            `boil:"body"`
	RecipientIDs types.StringArray `boil:"recipient_ids"`
	IsRead       bool              `boil:"is_read"`
	CreatedBy    string            `boil:"created_by"`
	CreatorRole  string            `boil:"creator_role"`
	CreatedAt    null.Time         `boil:"created_at"`
}

func (r *alertRow) toModel() model.Alert {
	return model.Alert{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		Category:     r.Category,
		Body:         r.Body,
		RecipientIDs: r.RecipientIDs,
		IsRead:       r.IsRead,
		CreatedBy:    r.CreatedBy,
		CreatorRole:  r.CreatorRole,
		CreatedAt:    r.CreatedAt.Time,
	}
}
