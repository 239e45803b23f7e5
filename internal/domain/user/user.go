package user

import "time"

// User represents a marketplace member row on the admin dashboard.
type User struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Status   Status    `json:"status"`
	Balance  float64   `json:"balance"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Status represents account status
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)
