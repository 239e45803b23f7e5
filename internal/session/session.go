package session

import "time"

// Role is a dashboard role; it decides which resources and mutations a
// session may touch.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleBlogger    Role = "blogger"
	RoleManager    Role = "manager"
	RoleWriter     Role = "writer"
	RoleTeams      Role = "teams"
)

// ValidRole reports whether r is a role this dashboard serves.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleAccountant, RoleBlogger, RoleManager, RoleWriter, RoleTeams:
		return true
	}
	return false
}

// Session is the authenticated dashboard state for one signed-in user. Token
// is the upstream bearer token, reused as the gateway's session credential.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
