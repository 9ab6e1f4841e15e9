package model

const (
	RoleAdmin       = "ADMIN"
	RoleSupervisor  = "SUPERVISOR"
	RoleStakeholder = "STAKEHOLDER"
)

// Scope carries the authenticated actor's identity for a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // ADMIN, SUPERVISOR, or STAKEHOLDER
	JTI      string `json:"jti"`
}

// IsAdmin checks if the scope has admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsSupervisor checks if the scope has supervisor role.
func (s Scope) IsSupervisor() bool {
	return s.Role == RoleSupervisor
}

// CanDispatchAlerts reports whether the actor may create alerts and
// dispatch status updates. Only administrators and supervisors may.
func (s Scope) CanDispatchAlerts() bool {
	return s.IsAdmin() || s.IsSupervisor()
}
