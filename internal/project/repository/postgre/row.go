package postgre

import (
	"ujenzi-notify/internal/model"

	"github.com/aarondl/null/v8"
)

// projectRow is the projects table row, bound through the SQLBoiler runtime.
type projectRow struct {
	ID        string      `boil:"id"`
	Name      string      `boil:"name"`
	SiteCode  string      `boil:"site_code"`
	Status    string      `boil:"status"`
	Location  null.String `boil:"location"`
	CreatedAt null.Time   `boil:"created_at"`
	UpdatedAt null.Time   `boil:"updated_at"`
	DeletedAt null.Time   `boil:"deleted_at"`
}

func (r *projectRow) toModel(stakeholderIDs []string) model.Project {
	p := model.Project{
		ID:             r.ID,
		Name:           r.Name,
		SiteCode:       r.SiteCode,
		Status:         r.Status,
		Location:       r.Location.String,
		StakeholderIDs: stakeholderIDs,
		CreatedAt:      r.CreatedAt.Time,
		UpdatedAt:      r.UpdatedAt.Time,
	}
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		p.DeletedAt = &t
	}
	return p
}

// stakeholderRow is the users table row for stakeholder reads.
type stakeholderRow struct {
	ID          string      `boil:"id"`
	FullName    null.String `boil:"full_name"`
	Role        string      `boil:"role"`
	PhoneNumber null.String `boil:"phone_number"`
	CreatedAt   null.Time   `boil:"created_at"`
	UpdatedAt   null.Time   `boil:"updated_at"`
}

func (r *stakeholderRow) toModel() model.Stakeholder {
	s := model.Stakeholder{
		ID:        r.ID,
		FullName:  r.FullName.String,
		Role:      r.Role,
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
	if r.PhoneNumber.Valid {
		phone := r.PhoneNumber.String
		s.PhoneNumber = &phone
	}
	return s
}
