package site

import (
	"strings"
	"time"
)

// Site represents a publisher website row on the admin/blogger dashboards.
type Site struct {
	ID        int64     `json:"id"`
	Domain    string    `json:"domain"`
	Category  string    `json:"category"`
	Status    Status    `json:"status"`
	DA        int       `json:"da"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// Status represents site listing status
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// NormalizeStatus maps the upstream's inconsistent site_status encodings
// ("1"/1/"active", "0"/0/"inactive") to one canonical status.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "active", "true":
		return StatusActive
	case "0", "inactive", "false":
		return StatusInactive
	case "2", "pending":
		return StatusPending
	default:
		return StatusInactive
	}
}
