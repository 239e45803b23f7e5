package repositories

import (
	"context"

	"linkboard/internal/domain/audit"
)

// AuditRepository defines the contract for mutation audit trail access
type AuditRepository interface {
	Record(ctx context.Context, e *audit.Entry) error
	List(ctx context.Context, limit, offset int) ([]audit.Entry, error)
}
